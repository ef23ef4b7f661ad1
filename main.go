package main

import (
	"fmt"
	"time"

	"gridsense-server/config"
	"gridsense-server/di"
)

func main() {
	container := di.NewContainer("prod")

	fmt.Println("running initial series refresh!")
	container.SeriesRefresherService.RefreshAllHorizons()

	fmt.Println("starting periodic refresh job!")
	container.SeriesRefresherService.StartPeriodicJob(config.SERIES_REFRESHER_SCHEDULE_SECONDS * time.Second)

	fmt.Println("starting server!")
	container.GridSenseHttpServer.Start()
	fmt.Println("server stopped!")
}
