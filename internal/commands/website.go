package commands

import (
	"fmt"
	"maps"
	"slices"

	"github.com/bwmarrin/discordgo"
)

// Websites maps the choices of /website to their URLs.
var Websites = map[string]string{
	"FF14Lodestone": "https://jp.finalfantasyxiv.com/lodestone/",
	"FF14Official":  "https://jp.finalfantasyxiv.com/",
	"FFLogs":        "https://ja.fflogs.com/",
	"GarlandTools":  "https://www.garlandtools.org/db/",
	"Eriones":       "https://eriones.com/",
}

func websiteChoices(sites map[string]string) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(sites))
	for _, name := range slices.Sorted(maps.Keys(sites)) {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name})
	}
	return choices
}

// LookupWebsite formats the answer to /website for key.
func LookupWebsite(sites map[string]string, key string) (string, bool) {
	url, ok := sites[key]
	if !ok {
		return fmt.Sprintf("%q is not registered.", key), false
	}
	return fmt.Sprintf("%s: %s", key, url), true
}

func (h *Handlers) Website(i *discordgo.InteractionCreate) {
	opt, ok := options(i)["name"]
	if !ok {
		h.replyEphemeral(i, "Choose a website.")
		return
	}
	text, found := LookupWebsite(h.sites, opt.StringValue())
	if !found {
		h.replyEphemeral(i, text)
		return
	}
	h.reply(i, text)
}
