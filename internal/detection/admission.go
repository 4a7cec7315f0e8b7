package detection

import (
	"time"

	"citron-srv/internal/model"
)

// DefaultWindow is the maximum age of an admitted change.
const DefaultWindow = 5 * time.Minute

// Admit reports whether a change enters the pipeline: a real (non canary)
// edit or page creation by a non-bot on an unpatrolled revision of an allowed
// wiki, made within window before now.
func Admit(c model.Change, allowedWikis map[string]model.Wiki, now time.Time, window time.Duration) bool {
	if c.Meta.Domain == model.CanaryDomain {
		return false
	}
	if c.Type != model.ChangeTypeEdit && c.Type != model.ChangeTypeNew {
		return false
	}
	if c.Bot || c.Patrolled {
		return false
	}
	if _, ok := allowedWikis[c.Wiki]; !ok {
		return false
	}
	age := now.Unix() - c.Timestamp
	return age >= 0 && age <= int64(window/time.Second)
}
