package timetable

import (
	"math/rand/v2"

	log "github.com/sirupsen/logrus"
	"github.com/studymate/studymate/pkg/subject"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

type Generator struct {
	// shuffler returns the source for one Generate call.
	shuffler func() Shuffler
}

// NewGenerator returns a generator drawing from the process-wide random source.
func NewGenerator() *Generator {
	return &Generator{shuffler: func() Shuffler { return globalShuffler{} }}
}

// NewSeededGenerator returns a generator whose every call starts from a fresh
// source seeded with seed, so the same input gives the same timetable no matter
// how often or from which session it is generated.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{shuffler: func() Shuffler { return rand.New(rand.NewPCG(seed, seed)) }}
}

func NewGeneratorWithShuffler(shuffler Shuffler) *Generator {
	return &Generator{shuffler: func() Shuffler { return shuffler }}
}

// Generate expands the subjects into sessions, shuffles them and packs them into
// the week. It never fails: missing subjects or a day too short for a single
// session give empty days.
func (g *Generator) Generate(subjects []subject.Subject, prefs Preferences) (Timetable, int) {
	tokens := ExpandSessions(subjects, prefs.SessionMinutes)
	g.shuffler().Shuffle(len(tokens), func(i, j int) {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	})
	timetable := PackDays(tokens, prefs)

	perDay := prefs.SessionsPerDay()
	if dropped := len(tokens) - DaysPerWeek*perDay; dropped > 0 {
		log.Debugf("week holds %d sessions, dropping %d of %d", DaysPerWeek*perDay, dropped, len(tokens))
	}
	log.Debugf("generated timetable: %d subjects, %d sessions, %d per day", len(subjects), len(tokens), perDay)
	return timetable, len(tokens)
}
