package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	// Advisory integrity diagnostics. Logs only: a transient non-valid state
	// is normal and repair never runs implicitly.
	_, err := a.sched.AddFunc("@every 5m", func() {
		report := a.checker.Validate()
		if report.IsValid {
			return
		}
		zap.S().Warnf("integrity check: %d orphaned avatars, %d products without avatars",
			len(report.OrphanedAvatars), len(report.ProductsWithoutAvatars))
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}
