package gamedata

// ArtDef defines a piece of ASCII art. Animated art has several frames.
type ArtDef struct {
	Name   string     `yaml:"name"`
	Color  string     `yaml:"color"`
	Frames [][]string `yaml:"frames"`
}

// ArtFile represents the structure of art.yaml.
type ArtFile struct {
	Art []ArtDef `yaml:"art"`
}

// LoadArt loads art definitions from the embedded art.yaml file.
func LoadArt() ([]ArtDef, error) {
	file, err := Load[ArtFile]("art.yaml")
	if err != nil {
		return nil, err
	}
	return file.Art, nil
}
