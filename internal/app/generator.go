package app

import (
	"fmt"
	"math/rand/v2"
	"strings"

	lorem "github.com/drhodes/golorem"
	"refresh_list_tui/internal/config"
)

// Generator produces the strings shown in the list. Implementations are total:
// Generate(n) always returns exactly n strings.
type Generator interface {
	Generate(count int) []string
}

type loremGenerator struct {
	minWords int
	maxWords int
}

func (g loremGenerator) Generate(count int) []string {
	out := make([]string, 0, max(count, 0))
	for i := 0; i < count; i++ {
		out = append(out, strings.TrimSuffix(lorem.Sentence(g.minWords, g.maxWords), "."))
	}
	return out
}

var randomWords = []string{
	"Mountain", "Basket", "Pencil", "Lantern", "Ribbon", "Bookshelf", "Bicycle", "Waterfall", "Candle", "Mirror",
	"Pillow", "Elephant", "Keyboard", "Kite", "Jacket", "Mango", "Brush", "Clock", "Ticket", "Ladder",
	"Sandal", "Notebook", "Whale", "Balloon", "Magnet", "Zebra", "Cupcake", "Telescope", "Turtle", "Blanket",
	"Parrot", "Helicopter", "Volcano", "Diary", "Chocolate", "Pineapple", "Sunglasses", "Apricot", "Chair",
	"Statue", "Broom", "Necklace", "Pumpkin", "Train", "Iceberg", "Hammer", "Dolphin", "Drawer", "Lightbulb",
	"Tower", "Robot", "Eagle", "Guitar", "Castle", "Scissors", "Rainbow", "Carrot", "Envelope", "Owl",
	"Cactus", "Shark", "Lemon", "Pigeon", "Harp", "Firefly", "Peacock", "Quilt", "Fox", "Igloo", "Windmill",
}

type wordGenerator struct{}

func (wordGenerator) Generate(count int) []string {
	out := make([]string, 0, max(count, 0))
	for i := 0; i < count; i++ {
		out = append(out, randomWords[rand.IntN(len(randomWords))])
	}
	return out
}

// NewGenerator builds the generator selected by cfg.
func NewGenerator(cfg config.GeneratorConfig) (Generator, error) {
	switch cfg.Kind {
	case "lorem":
		return loremGenerator{minWords: cfg.MinWords, maxWords: cfg.MaxWords}, nil
	case "words":
		return wordGenerator{}, nil
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnknownGenerator, cfg.Kind)
}
