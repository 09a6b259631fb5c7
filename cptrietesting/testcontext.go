package cptrietesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

// Duplicated from cptrie to avoid an import cycle with its tests.
const (
	MaxCodePoint = 0x10FFFF
	DomainSize   = MaxCodePoint + 1
	BlockSize    = 64
	ASCIILimit   = 0x80
)

type TestConfig struct {
	// Seed for the assignment generator. It is normal to force it to some
	// fixed value so that the generated data is the same from run to run.
	Seed int64
	// MaxValue bounds the generated values. Zero means 0xFF.
	MaxValue        uint32
	TestLabelPrefix string
}

type TestContext struct {
	Log  logger.Logger
	T    *testing.T
	Rand *rand.Rand
	Cfg  TestConfig
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	if cfg.MaxValue == 0 {
		cfg.MaxValue = 0xFF
	}
	c := TestContext{
		T:    t,
		Cfg:  cfg,
		Rand: rand.New(rand.NewSource(cfg.Seed)),
	}
	logger.New("INFO")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	c.T.Cleanup(c.reportSeed)
	return c
}

// reportSeed logs the generator seed of a failed test so the failing data
// can be regenerated.
func (c *TestContext) reportSeed() {
	if c.T.Failed() {
		c.T.Logf("%s: assignments generated with seed %d", c.Cfg.TestLabelPrefix, c.Cfg.Seed)
	}
}

// BoundaryPoints returns the code points where off by one mistakes show up
// for a trie with the given high start, plus out of domain inputs.
func BoundaryPoints(highStart uint32) []rune {
	points := []rune{
		-1, 0, 1,
		ASCIILimit - 1, ASCIILimit,
		BlockSize - 1, BlockSize,
		0xFF, 0x100,
		0xFFFF, 0x10000,
		MaxCodePoint - 1, MaxCodePoint,
		DomainSize, DomainSize + 1,
		-0x80000000, 0x7FFFFFFF,
	}
	if highStart > 0 {
		points = append(points, rune(highStart-1))
	}
	if highStart <= MaxCodePoint {
		points = append(points, rune(highStart))
	}
	return points
}
