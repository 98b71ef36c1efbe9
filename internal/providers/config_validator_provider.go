package providers

import (
	"fmt"
	"time"

	"github.com/gookit/validate"

	"github.com/ross-rotordynamics/ross-bott/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors
	}

	// gookit has no time-of-day rule; check the schedule fields by hand.
	for key, at := range map[string]string{
		"schedule.scanAt":  cv.conf.Schedule.ScanAt,
		"schedule.statsAt": cv.conf.Schedule.StatsAt,
	} {
		if _, err := time.Parse("15:04", at); err != nil {
			return fmt.Errorf("%s: %q is not a valid HH:MM time of day", key, at)
		}
	}
	return nil
}
