// Package companion tracks bot messages that must disappear together with
// the user message that caused them.
package companion

import (
	"github.com/samber/mo"

	"niseyomi/internal/chat"
	"niseyomi/internal/log"
)

// Kind names the feature that produced a companion. Each original message
// holds at most one companion per kind.
type Kind int

const (
	KindMirror Kind = iota
	KindRewrite
)

func (k Kind) String() string {
	switch k {
	case KindMirror:
		return "mirror"
	case KindRewrite:
		return "rewrite"
	default:
		return "unknown"
	}
}

type Companion struct {
	Kind      Kind
	ChannelID string
	MessageID string
}

// Registry maps original message ids to their companions. It lives for the
// process lifetime only and is not synchronized: all calls must come from
// the bot's single event worker.
type Registry struct {
	entries map[string]map[Kind]Companion
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]map[Kind]Companion)}
}

// Register stores c for originalID, replacing any companion of the same kind.
func (r *Registry) Register(originalID string, c Companion) {
	slots, ok := r.entries[originalID]
	if !ok {
		slots = make(map[Kind]Companion, 2)
		r.entries[originalID] = slots
	}
	slots[c.Kind] = c
}

// Take removes and returns every companion of originalID, mirror first.
func (r *Registry) Take(originalID string) mo.Option[[]Companion] {
	slots, ok := r.entries[originalID]
	if !ok {
		return mo.None[[]Companion]()
	}
	delete(r.entries, originalID)

	companions := make([]Companion, 0, len(slots))
	for _, k := range []Kind{KindMirror, KindRewrite} {
		if c, ok := slots[k]; ok {
			companions = append(companions, c)
		}
	}
	return mo.Some(companions)
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// CascadeDelete deletes the companions of a removed message and forgets
// them whatever the outcome. It returns the number of delete calls made.
func (r *Registry) CascadeDelete(client chat.Client, originalID string) int {
	companions, ok := r.Take(originalID).Get()
	if !ok {
		return 0
	}
	for _, c := range companions {
		err := client.ChannelMessageDelete(c.ChannelID, c.MessageID)
		switch {
		case err == nil:
			log.Debug("deleted companion", "kind", c.Kind, "original", originalID, "message", c.MessageID)
		case chat.IsNotFound(err):
			log.Debug("companion already gone", "kind", c.Kind, "message", c.MessageID)
		case chat.IsForbidden(err):
			log.Warn("no permission to delete companion", "kind", c.Kind, "channel", c.ChannelID, "message", c.MessageID, log.Err(err))
		default:
			log.Warn("failed to delete companion", "kind", c.Kind, "channel", c.ChannelID, "message", c.MessageID, log.Err(err))
		}
	}
	return len(companions)
}
