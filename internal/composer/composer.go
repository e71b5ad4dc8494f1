// Package composer turns a proofreading result into the message the bot
// posts, or decides there is nothing worth reporting.
package composer

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ccbot/typo-check-bot/internal/proofread"
)

// leadIns are the phrases prefixed to a posted correction, picked
// uniformly at random.
var leadIns = []string{
	"怪しい日本語がありますね",
	"この日本語はおかしいかもしれませんね",
	"えっ、この日本語大丈夫ですか？",
}

// Composer selects the most likely real mistake from a proofreading
// response and formats the bot's comment about it.
type Composer struct {
	rng *rand.Rand
}

// New returns a Composer seeded from the clock.
func New() *Composer {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Composer using the given random source, so tests
// can make the lead-in choice deterministic.
func NewWithRand(rng *rand.Rand) *Composer {
	return &Composer{rng: rng}
}

// Compose returns the message to post for a proofreading response. The
// second return value is false when no message should be posted.
func (c *Composer) Compose(resp *proofread.Response) (string, bool) {
	if resp.Status != proofread.StatusIssuesFound {
		return "", false
	}

	// Drop the purely stylistic notes, they are too picky to bother
	// people with.
	var flagged []proofread.Alert
	for _, a := range resp.Alerts {
		if a.AlertCode != 0 {
			flagged = append(flagged, a)
		}
	}
	if len(flagged) == 0 {
		return "", false
	}

	// The highest ranking score is the most likely real mistake. First
	// maximum wins on ties.
	top := flagged[0]
	for _, a := range flagged[1:] {
		if a.RankingScore > top.RankingScore {
			top = a
		}
	}

	return fmt.Sprintf("%s\n%s", leadIns[c.rng.Intn(len(leadIns))], top.CheckedSentence), true
}
