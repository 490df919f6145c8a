package config

type RosterConfig struct {
	Boss   BossDef   `yaml:"boss"`
	Heroes []HeroDef `yaml:"heroes"`
}

type BossDef struct {
	Name   string `yaml:"name"`
	Health int    `yaml:"health"`
	Damage int    `yaml:"damage"`
}

type HeroDef struct {
	Name        string `yaml:"name"`
	Class       string `yaml:"class"`
	Health      int    `yaml:"health"`
	Damage      int    `yaml:"damage"`
	HealPoints  int    `yaml:"heal_points"`
	StealAmount int    `yaml:"steal_amount"`
}

const (
	ClassWarrior  = "warrior"
	ClassMagic    = "magic"
	ClassBerserk  = "berserk"
	ClassMedic    = "medic"
	ClassWitcher  = "witcher"
	ClassHacker   = "hacker"
	ClassSpitfire = "spitfire"
	ClassBomber   = "bomber"
)

var knownClasses = map[string]bool{
	ClassWarrior:  true,
	ClassMagic:    true,
	ClassBerserk:  true,
	ClassMedic:    true,
	ClassWitcher:  true,
	ClassHacker:   true,
	ClassSpitfire: true,
	ClassBomber:   true,
}
