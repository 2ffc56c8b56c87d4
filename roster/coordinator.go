package roster

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Dosada05/league-signups/models"
	"github.com/google/uuid"
)

var (
	// ErrClaimRejected объединяет все отказы по слоту в одну категорию.
	ErrClaimRejected = errors.New("claim rejected")

	ErrGameNotFound = errors.New("game roster not found")
	ErrNotHolder    = fmt.Errorf("%w: slot is not held by this participant", ErrClaimRejected)
)

// SlotTakenError reports the participant currently holding the contested slot.
type SlotTakenError struct {
	Role   models.Role
	Holder string
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("%s is already taken by %s", e.Role.Label(), e.Holder)
}

func (e *SlotTakenError) Is(target error) bool { return target == ErrClaimRejected }

// AlreadyInGameError reports the role the participant already holds in the
// same game.
type AlreadyInGameError struct {
	Held models.Role
}

func (e *AlreadyInGameError) Error() string {
	return fmt.Sprintf("already in this game as %s, release that slot first", e.Held.Label())
}

func (e *AlreadyInGameError) Is(target error) bool { return target == ErrClaimRejected }

type gameRoster struct {
	mu       sync.Mutex
	signupID uuid.UUID
	slots    map[models.Role]string // role -> participant, absent means unclaimed
}

// Coordinator arbitrates role claims per game. Each game's six slots are
// serialized through their own mutex, so claims on different games never
// contend and two simultaneous claims for the same open slot resolve to
// exactly one winner.
type Coordinator struct {
	mu    sync.RWMutex
	games map[uuid.UUID]*gameRoster
}

func NewCoordinator() *Coordinator {
	return &Coordinator{
		games: make(map[uuid.UUID]*gameRoster),
	}
}

// InitGame materializes the six unclaimed slots for a game. Re-initializing
// an existing game is a no-op.
func (c *Coordinator) InitGame(signupID, gameID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.games[gameID]; ok {
		return
	}
	c.games[gameID] = &gameRoster{
		signupID: signupID,
		slots:    make(map[models.Role]string),
	}
}

func (c *Coordinator) get(gameID uuid.UUID) (*gameRoster, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	g, ok := c.games[gameID]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// Claim transitions (gameID, role) to claimed by participant. Re-claiming a
// slot the participant already holds succeeds without changing anything.
func (c *Coordinator) Claim(gameID uuid.UUID, role models.Role, participant string) (models.RosterView, error) {
	g, err := c.get(gameID)
	if err != nil {
		return models.RosterView{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if holder, ok := g.slots[role]; ok && holder != participant {
		return models.RosterView{}, &SlotTakenError{Role: role, Holder: holder}
	}
	for r, holder := range g.slots {
		if holder == participant && r != role {
			return models.RosterView{}, &AlreadyInGameError{Held: r}
		}
	}
	g.slots[role] = participant
	return g.view(gameID), nil
}

// Release transitions (gameID, role) back to unclaimed, provided participant
// currently holds it.
func (c *Coordinator) Release(gameID uuid.UUID, role models.Role, participant string) (models.RosterView, error) {
	g, err := c.get(gameID)
	if err != nil {
		return models.RosterView{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.slots[role] != participant {
		return models.RosterView{}, ErrNotHolder
	}
	delete(g.slots, role)
	return g.view(gameID), nil
}

// View returns a snapshot of all six slots of a game.
func (c *Coordinator) View(gameID uuid.UUID) (models.RosterView, error) {
	g, err := c.get(gameID)
	if err != nil {
		return models.RosterView{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.view(gameID), nil
}

// view must be called with g.mu held.
func (g *gameRoster) view(gameID uuid.UUID) models.RosterView {
	slots := make([]models.RoleSlot, 0, len(models.Roles))
	for _, role := range models.Roles {
		slots = append(slots, models.RoleSlot{Role: role, Participant: g.slots[role]})
	}
	return models.RosterView{
		SignupID: g.signupID,
		GameID:   gameID,
		Slots:    slots,
	}
}
