package main

import "open-eyes/internal/app"

func main() {
	application, err := app.NewApplication(app.Eyenalizer)
	if err != nil {
		app.Fatal(err)
	}

	if err := application.Run(); err != nil {
		app.Fatal(err)
	}
}
