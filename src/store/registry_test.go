package store

import (
	"fmt"
	"sync"
	"testing"

	"Backend-Mergington-API/src/models"

	"github.com/stretchr/testify/assert"
)

func newTestRegistry() *ActivityRegistry {
	return NewActivityRegistry(map[string]*models.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Math Club": {
			Description:     "Solve challenging problems and prepare for math competitions",
			Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{},
		},
	})
}

func TestNewActivityRegistry(t *testing.T) {
	// Registry must copy the seed, not alias it
	t.Run("TestSeedIsCloned", func(t *testing.T) {
		seed := map[string]*models.Activity{
			"Chess Club": {
				Description:     "Learn strategies and compete in chess tournaments",
				Schedule:        "Fridays, 3:30 PM - 5:00 PM",
				MaxParticipants: 12,
				Participants:    []string{"michael@mergington.edu"},
			},
		}
		registry := NewActivityRegistry(seed)

		seed["Chess Club"].Participants[0] = "changed@mergington.edu"
		seed["Chess Club"].Description = "changed"

		activity, err := registry.Get("Chess Club")
		assert.NoError(t, err)
		assert.Equal(t, "Learn strategies and compete in chess tournaments", activity.Description)
		assert.Equal(t, []string{"michael@mergington.edu"}, activity.Participants)
	})

	t.Run("TestCount", func(t *testing.T) {
		registry := newTestRegistry()
		assert.Equal(t, 2, registry.Count())
	})
}

func TestGetAll(t *testing.T) {
	registry := newTestRegistry()

	t.Run("TestReturnsAllActivities", func(t *testing.T) {
		all := registry.GetAll()
		assert.Len(t, all, 2)
		assert.Contains(t, all, "Chess Club")
		assert.Contains(t, all, "Math Club")
		assert.Equal(t, 12, all["Chess Club"].MaxParticipants)
	})

	// Mutating the snapshot must not touch the registry
	t.Run("TestSnapshotIsIsolated", func(t *testing.T) {
		all := registry.GetAll()
		chess := all["Chess Club"]
		chess.Participants[0] = "intruder@mergington.edu"

		fresh, err := registry.Get("Chess Club")
		assert.NoError(t, err)
		assert.Equal(t, "michael@mergington.edu", fresh.Participants[0])
	})

	// Activities without participants must keep an empty slice, not nil,
	// so they serialize as [] instead of null
	t.Run("TestEmptyParticipantsNotNil", func(t *testing.T) {
		all := registry.GetAll()
		assert.NotNil(t, all["Math Club"].Participants)
		assert.Empty(t, all["Math Club"].Participants)
	})
}

func TestGet(t *testing.T) {
	registry := newTestRegistry()

	t.Run("TestExistingActivity", func(t *testing.T) {
		activity, err := registry.Get("Chess Club")
		assert.NoError(t, err)
		assert.Equal(t, "Fridays, 3:30 PM - 5:00 PM", activity.Schedule)
		assert.Len(t, activity.Participants, 2)
	})

	t.Run("TestUnknownActivity", func(t *testing.T) {
		_, err := registry.Get("Knitting Club")
		assert.ErrorIs(t, err, ErrActivityNotFound)
	})
}

func TestSignup(t *testing.T) {
	t.Run("TestSuccessfulSignup", func(t *testing.T) {
		registry := newTestRegistry()
		err := registry.Signup("Chess Club", "newstudent@mergington.edu")
		assert.NoError(t, err)

		activity, _ := registry.Get("Chess Club")
		assert.Len(t, activity.Participants, 3)
		assert.Contains(t, activity.Participants, "newstudent@mergington.edu")
	})

	t.Run("TestDuplicateSignup", func(t *testing.T) {
		registry := newTestRegistry()
		err := registry.Signup("Chess Club", "michael@mergington.edu")
		assert.ErrorIs(t, err, ErrAlreadySignedUp)

		activity, _ := registry.Get("Chess Club")
		assert.Len(t, activity.Participants, 2)
	})

	t.Run("TestUnknownActivity", func(t *testing.T) {
		registry := newTestRegistry()
		err := registry.Signup("Knitting Club", "someone@mergington.edu")
		assert.ErrorIs(t, err, ErrActivityNotFound)
	})

	// MaxParticipants is informational only, signups past it must succeed
	t.Run("TestSignupBeyondMaxParticipants", func(t *testing.T) {
		registry := NewActivityRegistry(map[string]*models.Activity{
			"Tiny Club": {
				Description:     "A very small club",
				Schedule:        "Mondays, 3:30 PM - 4:00 PM",
				MaxParticipants: 1,
				Participants:    []string{"first@mergington.edu"},
			},
		})

		err := registry.Signup("Tiny Club", "second@mergington.edu")
		assert.NoError(t, err)
		err = registry.Signup("Tiny Club", "third@mergington.edu")
		assert.NoError(t, err)

		activity, _ := registry.Get("Tiny Club")
		assert.Len(t, activity.Participants, 3)
	})
}

func TestUnregister(t *testing.T) {
	t.Run("TestSuccessfulUnregister", func(t *testing.T) {
		registry := newTestRegistry()
		err := registry.Unregister("Chess Club", "michael@mergington.edu")
		assert.NoError(t, err)

		activity, _ := registry.Get("Chess Club")
		assert.Equal(t, []string{"daniel@mergington.edu"}, activity.Participants)
	})

	t.Run("TestNotSignedUp", func(t *testing.T) {
		registry := newTestRegistry()
		err := registry.Unregister("Chess Club", "stranger@mergington.edu")
		assert.ErrorIs(t, err, ErrNotSignedUp)
	})

	t.Run("TestUnknownActivity", func(t *testing.T) {
		registry := newTestRegistry()
		err := registry.Unregister("Knitting Club", "michael@mergington.edu")
		assert.ErrorIs(t, err, ErrActivityNotFound)
	})

	t.Run("TestUnregisterFromEmptyActivity", func(t *testing.T) {
		registry := newTestRegistry()
		err := registry.Unregister("Math Club", "someone@mergington.edu")
		assert.ErrorIs(t, err, ErrNotSignedUp)
	})

	t.Run("TestSignupAgainAfterUnregister", func(t *testing.T) {
		registry := newTestRegistry()
		assert.NoError(t, registry.Unregister("Chess Club", "michael@mergington.edu"))
		assert.NoError(t, registry.Signup("Chess Club", "michael@mergington.edu"))

		activity, _ := registry.Get("Chess Club")
		assert.Contains(t, activity.Participants, "michael@mergington.edu")
		assert.Len(t, activity.Participants, 2)
	})
}

func TestConcurrentAccess(t *testing.T) {
	// Parallel signups with distinct emails must all land exactly once
	t.Run("TestConcurrentDistinctSignups", func(t *testing.T) {
		registry := newTestRegistry()
		const workers = 50

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				email := fmt.Sprintf("student%d@mergington.edu", n)
				assert.NoError(t, registry.Signup("Math Club", email))
			}(i)
		}
		wg.Wait()

		activity, _ := registry.Get("Math Club")
		assert.Len(t, activity.Participants, workers)
	})

	// Racing signups with the same email: exactly one wins
	t.Run("TestConcurrentDuplicateSignups", func(t *testing.T) {
		registry := newTestRegistry()
		const workers = 20

		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- registry.Signup("Math Club", "racer@mergington.edu")
			}()
		}
		wg.Wait()
		close(errs)

		succeeded := 0
		for err := range errs {
			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, ErrAlreadySignedUp)
			}
		}
		assert.Equal(t, 1, succeeded)

		activity, _ := registry.Get("Math Club")
		assert.Equal(t, []string{"racer@mergington.edu"}, activity.Participants)
	})

	// Readers running alongside writers must never observe a torn state
	t.Run("TestConcurrentReadersAndWriters", func(t *testing.T) {
		registry := newTestRegistry()
		const rounds = 30

		var wg sync.WaitGroup
		for i := 0; i < rounds; i++ {
			wg.Add(2)
			go func(n int) {
				defer wg.Done()
				email := fmt.Sprintf("reader%d@mergington.edu", n)
				_ = registry.Signup("Chess Club", email)
			}(i)
			go func() {
				defer wg.Done()
				all := registry.GetAll()
				assert.Len(t, all, 2)
			}()
		}
		wg.Wait()

		activity, _ := registry.Get("Chess Club")
		assert.Len(t, activity.Participants, 2+rounds)
	})
}
