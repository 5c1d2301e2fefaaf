package obs

import (
	"log"
	"time"
)

// Time logs how long a named operation took, and its error if it failed.
// Intended for composition-root use; the engine packages never log.
//
// Usage:
//
//	defer obs.Time("plan.optimize")(&err)
func Time(name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("op=%s dur=%dms err=%v", name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("op=%s dur=%dms", name, dur.Milliseconds())
	}
}
