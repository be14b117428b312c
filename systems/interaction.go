package systems

// Cue names an audio cue emitted on a state transition.
type Cue uint8

const (
	CueCollect Cue = iota // a particle got captured by the pointer
	CueForm               // the swarm was told to reform the word
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueCollect:
		return "collect"
	case CueForm:
		return "form"
	default:
		return "unknown"
	}
}

// CuePlayer plays audio cues. Playback is fire-and-forget.
type CuePlayer interface {
	Play(cue Cue)
}

// GlobalMode is the swarm-wide state read by every particle each tick.
type GlobalMode struct {
	Dispersing bool
	Collected  bool // every particle stuck at frame start
	ClickPhase int  // 0 = next click disperses, 1 = next click reforms
}

// ClickOutcome describes what a click did.
type ClickOutcome uint8

const (
	ClickIgnored ClickOutcome = iota
	ClickDispersed
	ClickReformed
)

// String returns the outcome name.
func (o ClickOutcome) String() string {
	switch o {
	case ClickDispersed:
		return "dispersed"
	case ClickReformed:
		return "reformed"
	default:
		return "ignored"
	}
}

// StepResult reports what happened during one controller step.
type StepResult struct {
	TickResult
	CompletionFired bool
}

// Controller owns the global mode and drives the swarm from pointer and click input.
type Controller struct {
	swarm      *Swarm
	cues       CuePlayer
	completion *CompletionTimer
	mode       GlobalMode
}

// NewController creates a controller in the forming state.
// cues may be nil; completion may be nil to disable the completion callback.
func NewController(swarm *Swarm, cues CuePlayer, completion *CompletionTimer) *Controller {
	return &Controller{
		swarm:      swarm,
		cues:       cues,
		completion: completion,
	}
}

// Click handles one click event.
func (c *Controller) Click() ClickOutcome {
	switch {
	case c.mode.ClickPhase == 0 && !c.mode.Dispersing:
		c.mode.Dispersing = true
		c.swarm.Reset()
		c.mode.ClickPhase = 1
		if c.completion != nil {
			c.completion.Cancel()
		}
		return ClickDispersed

	case c.mode.ClickPhase == 1 && c.mode.Dispersing:
		c.play(CueForm)
		c.swarm.Reset()
		c.mode.Dispersing = false
		c.mode.ClickPhase = 0
		return ClickReformed
	}
	return ClickIgnored
}

// Step runs one frame: aggregate, completion check, then the swarm tick.
func (c *Controller) Step(pointer PointerState, dt float64) StepResult {
	var res StepResult

	c.mode.Collected = c.swarm.AllStuck()

	if c.completion != nil {
		res.CompletionFired = c.completion.Update(c.FullyCollected(), dt)
	}

	res.TickResult = c.swarm.Tick(pointer, c.mode)
	if !c.mode.Collected {
		for i := 0; i < res.Captured; i++ {
			c.play(CueCollect)
		}
	}

	return res
}

// Mode returns a copy of the global mode.
func (c *Controller) Mode() GlobalMode {
	return c.mode
}

// FullyCollected reports whether every particle is stuck and the swarm is not dispersing.
// An empty swarm never counts as collected here.
func (c *Controller) FullyCollected() bool {
	return c.mode.Collected && !c.mode.Dispersing && c.swarm.Len() > 0
}

// Completion returns the completion timer, or nil.
func (c *Controller) Completion() *CompletionTimer {
	return c.completion
}

func (c *Controller) play(cue Cue) {
	if c.cues != nil {
		c.cues.Play(cue)
	}
}
