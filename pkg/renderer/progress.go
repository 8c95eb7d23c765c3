package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Progress logs a line each time the completed fraction crosses a whole percent
type Progress struct {
	total       int
	lastPercent int
	start       time.Time
	logger      core.Logger
}

// NewProgress starts the clock for a job of total units
func NewProgress(total int, logger core.Logger) *Progress {
	return &Progress{
		total:  total,
		start:  time.Now(),
		logger: logger,
	}
}

// Update reports the cumulative number of completed units
func (p *Progress) Update(completed int) {
	if p.total <= 0 {
		return
	}

	percent := completed * 100 / p.total
	if percent > p.lastPercent {
		p.lastPercent = percent
		p.logger.Printf("%d%% done, %.2f s elapsed\n", percent, p.Elapsed().Seconds())
	}
}

// Elapsed returns the time since the job started
func (p *Progress) Elapsed() time.Duration {
	return time.Since(p.start)
}
