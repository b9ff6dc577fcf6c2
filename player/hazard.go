package player

// HazardKind classifies what touched the player.
type HazardKind int

const (
	HazardNone HazardKind = iota
	HazardHeavyMelee
	HazardLightMelee
	HazardProjectile
)

func (k HazardKind) String() string {
	switch k {
	case HazardHeavyMelee:
		return "heavy_melee"
	case HazardLightMelee:
		return "light_melee"
	case HazardProjectile:
		return "projectile"
	}
	return "none"
}

// ParseHazardKind maps a level property value to a HazardKind.
func ParseHazardKind(s string) HazardKind {
	switch s {
	case "heavy_melee":
		return HazardHeavyMelee
	case "light_melee":
		return HazardLightMelee
	case "projectile":
		return HazardProjectile
	}
	return HazardNone
}

// Remover removes an object from the world.
type Remover interface {
	Remove()
}

// RemoverFunc adapts a function to Remover.
type RemoverFunc func()

func (f RemoverFunc) Remove() { f() }

// Contact is a hazard touching the player. Projectile contacts carry the
// projectile so it can be removed.
type Contact struct {
	Kind       HazardKind
	Projectile Remover
}

// DamageTable maps hazard kinds to damage.
type DamageTable struct {
	HeavyMelee float64
	LightMelee float64
	Projectile float64
}

// For returns the damage for kind, or zero for unknown kinds.
func (t DamageTable) For(kind HazardKind) float64 {
	switch kind {
	case HazardHeavyMelee:
		return t.HeavyMelee
	case HazardLightMelee:
		return t.LightMelee
	case HazardProjectile:
		return t.Projectile
	}
	return 0
}
