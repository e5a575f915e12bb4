package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/codekingdoms/internal/quest"
)

// ErrNoKingdoms is returned when a kingdoms file defines no kingdoms.
var ErrNoKingdoms = errors.New("no kingdoms defined")

// KingdomDef defines a kingdom loaded from YAML.
type KingdomDef struct {
	Name       string         `yaml:"name"`       // Display name and progress key (e.g., "Python")
	Boss       string         `yaml:"boss"`       // Art name of the kingdom's boss
	Background string         `yaml:"background"` // Hex color of the level backdrop
	Region     RegionDef      `yaml:"region"`     // Clickable area on the world map, as screen fractions
	BossIcon   PointDef       `yaml:"boss_icon"`  // Boss icon position on the world map, as screen fractions
	Challenges []ChallengeDef `yaml:"challenges"` // Curriculum, in order
}

// RegionDef is a rectangle expressed as fractions of the screen.
type RegionDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PointDef is a point expressed as fractions of the screen.
type PointDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ChallengeDef defines one coding challenge.
type ChallengeDef struct {
	Quest    string `yaml:"quest"`
	Problem  string `yaml:"problem"`
	Answer   string `yaml:"answer"`
	XPReward int    `yaml:"xp"`
}

// KingdomsFile represents the structure of kingdoms.yaml.
type KingdomsFile struct {
	Kingdoms []KingdomDef `yaml:"kingdoms"`
}

// Curriculum converts the challenge definitions into a quest curriculum.
func (k *KingdomDef) Curriculum() quest.Curriculum {
	challenges := make([]quest.Challenge, len(k.Challenges))
	for i, c := range k.Challenges {
		challenges[i] = quest.Challenge{
			QuestName:     c.Quest,
			ProblemText:   c.Problem,
			CorrectAnswer: c.Answer,
			XPReward:      c.XPReward,
		}
	}
	return quest.NewCurriculum(challenges...)
}

// BackgroundColor returns the level backdrop color.
func (k *KingdomDef) BackgroundColor() tcell.Color {
	color, err := ParseHexColor(k.Background)
	if err != nil {
		return tcell.ColorBlack // fallback
	}
	return color
}

// Validate checks that the kingdom can be played.
func (k *KingdomDef) Validate() error {
	if k.Name == "" {
		return errors.New("kingdom has no name")
	}
	if len(k.Challenges) == 0 {
		return fmt.Errorf("kingdom %s: curriculum is empty", k.Name)
	}
	if k.Region.W <= 0 || k.Region.H <= 0 {
		return fmt.Errorf("kingdom %s: map region has no area", k.Name)
	}
	for i, c := range k.Challenges {
		if c.Quest == "" || c.Problem == "" {
			return fmt.Errorf("kingdom %s: challenge %d is missing its quest or problem text", k.Name, i)
		}
		if c.Answer == "" {
			return fmt.Errorf("kingdom %s: challenge %q has no answer", k.Name, c.Quest)
		}
		if c.XPReward <= 0 {
			return fmt.Errorf("kingdom %s: challenge %q has a non-positive reward", k.Name, c.Quest)
		}
	}
	return nil
}

// Validate checks every kingdom and rejects duplicates.
func (f *KingdomsFile) Validate() error {
	if len(f.Kingdoms) == 0 {
		return ErrNoKingdoms
	}
	seen := make(map[string]bool, len(f.Kingdoms))
	for i := range f.Kingdoms {
		k := &f.Kingdoms[i]
		if err := k.Validate(); err != nil {
			return err
		}
		if seen[k.Name] {
			return fmt.Errorf("duplicate kingdom %s", k.Name)
		}
		seen[k.Name] = true
	}
	return nil
}

// LoadKingdoms loads kingdom definitions from the embedded kingdoms.yaml file.
func LoadKingdoms() ([]KingdomDef, error) {
	file, err := Load[KingdomsFile]("kingdoms.yaml")
	if err != nil {
		return nil, err
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("kingdoms.yaml: %w", err)
	}
	return file.Kingdoms, nil
}

// LoadKingdomsFile loads kingdom definitions from a YAML file on disk.
func LoadKingdomsFile(path string) ([]KingdomDef, error) {
	file, err := LoadFile[KingdomsFile](path)
	if err != nil {
		return nil, err
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file.Kingdoms, nil
}
