package main

import "tasktrack/internal/app"

// @title           TaskTrack API
// @version         1.0
// @description     Personal task management: accounts, categories, tasks and dashboard stats.
// @BasePath        /
func main() {
	app.Run()
}
