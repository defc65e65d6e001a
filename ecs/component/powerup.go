package component

// PowerupEffect is the closed set of effects a completed powerup grants.
type PowerupEffect int

const (
	PowerupMultishot PowerupEffect = iota
	PowerupSplash
	PowerupHeal
)

func (e PowerupEffect) String() string {
	switch e {
	case PowerupMultishot:
		return "multishot"
	case PowerupSplash:
		return "splash"
	case PowerupHeal:
		return "heal"
	}
	return "unknown"
}

// Powerup is a miniature challenge with a hard timeout. At most one is live
// at a time, and never during a boss fight.
type Powerup struct {
	Challenge    Challenge
	TimeoutTicks int
	Effect       PowerupEffect
}

var PowerupComponent = NewComponent[Powerup]()
