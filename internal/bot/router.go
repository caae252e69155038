package bot

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"niseyomi/internal/commands"
	"niseyomi/internal/log"
)

// Router maps slash command names and modal custom id prefixes to handlers.
type Router struct {
	commands map[string]commands.Handler
	modals   map[string]commands.Handler
}

func NewRouter() *Router {
	return &Router{
		commands: make(map[string]commands.Handler),
		modals:   make(map[string]commands.Handler),
	}
}

func (r *Router) Command(name string, h commands.Handler) {
	r.commands[name] = h
}

func (r *Router) Modal(prefix string, h commands.Handler) {
	r.modals[prefix] = h
}

// Route calls the handler registered for i and reports whether one was found.
func (r *Router) Route(i *discordgo.InteractionCreate) bool {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := r.commands[name]; ok {
			h(i)
			return true
		}
		log.Warn("unknown command", "command", name, "guild", i.GuildID)
	case discordgo.InteractionModalSubmit:
		id := i.ModalSubmitData().CustomID
		for prefix, h := range r.modals {
			if strings.HasPrefix(id, prefix) {
				h(i)
				return true
			}
		}
		log.Warn("unknown modal", "custom_id", id, "guild", i.GuildID)
	}
	return false
}
