// Package sim advances the real-time entities of a run: the player, shots,
// explosions and enemies, all colliding against the static world.
package sim

// Config holds the tuning constants of the simulation.
type Config struct {
	// Player
	PlayerMaxHealth  int     `yaml:"player_max_health"`
	PlayerHitRadius  float64 `yaml:"player_hit_radius"`
	MoveSpeed        float64 `yaml:"move_speed"`        // units per second
	SprintMultiplier float64 `yaml:"sprint_multiplier"` // applied while sprinting
	RotationSpeed    float64 `yaml:"rotation_speed"`    // radians per second
	DashDistance     float64 `yaml:"dash_distance"`
	DashStepDistance float64 `yaml:"dash_step_distance"`
	DashCooldown     float64 `yaml:"dash_cooldown"` // seconds

	// Projectiles
	ProjectileSpeed        float64 `yaml:"projectile_speed"`
	EnemyProjectileSpeed   float64 `yaml:"enemy_projectile_speed"`
	ProjectileStepDistance float64 `yaml:"projectile_step_distance"`
	ProjectileMaxDistance  float64 `yaml:"projectile_max_distance"`
	ProjectileCooldown     float64 `yaml:"projectile_cooldown"`
	ProjectileMuzzleOffset float64 `yaml:"projectile_muzzle_offset"`
	EnemyProjectileDamage  int     `yaml:"enemy_projectile_damage"`
	ExplosionDuration      float64 `yaml:"explosion_duration"`

	// Enemies
	EnemyHitRadius     float64 `yaml:"enemy_hit_radius"`
	EnemyMoveSpeed     float64 `yaml:"enemy_move_speed"`
	EnemyStopDistance  float64 `yaml:"enemy_stop_distance"`
	EnemyFireDistance  float64 `yaml:"enemy_fire_distance"`
	EnemyFireCooldown  float64 `yaml:"enemy_fire_cooldown"`
	EnemySpawnInterval float64 `yaml:"enemy_spawn_interval"`
	EnemyMaxCount      int     `yaml:"enemy_max_count"`
	EnemySpawnAttempts int     `yaml:"enemy_spawn_attempts"`
	EnemySpawnDistance float64 `yaml:"enemy_spawn_distance"` // exclusion radius around the player
	EnemyMinSeparation float64 `yaml:"enemy_min_separation"`
	SpawnMargin        float64 `yaml:"spawn_margin"`
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		PlayerMaxHealth:  100,
		PlayerHitRadius:  0.35,
		MoveSpeed:        3.2,
		SprintMultiplier: 1.5,
		RotationSpeed:    1.5,
		DashDistance:     3.0,
		DashStepDistance: 0.1,
		DashCooldown:     1.2,

		ProjectileSpeed:        10.0,
		EnemyProjectileSpeed:   6.0,
		ProjectileStepDistance: 0.05,
		ProjectileMaxDistance:  24.0,
		ProjectileCooldown:     0.25,
		ProjectileMuzzleOffset: 0.35,
		EnemyProjectileDamage:  10,
		ExplosionDuration:      0.45,

		EnemyHitRadius:     0.5,
		EnemyMoveSpeed:     1.6,
		EnemyStopDistance:  1.8,
		EnemyFireDistance:  9.0,
		EnemyFireCooldown:  1.8,
		EnemySpawnInterval: 4.0,
		EnemyMaxCount:      8,
		EnemySpawnAttempts: 200,
		EnemySpawnDistance: 8.0,
		EnemyMinSeparation: 3.0,
		SpawnMargin:        0.8,
	}
}
