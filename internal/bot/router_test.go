package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	var called []string
	r := NewRouter()
	r.Command("website", func(*discordgo.InteractionCreate) { called = append(called, "website") })
	r.Modal("event_modal:", func(*discordgo.InteractionCreate) { called = append(called, "modal") })

	command := func(name string) *discordgo.InteractionCreate {
		return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{Name: name},
		}}
	}
	modal := func(id string) *discordgo.InteractionCreate {
		return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionModalSubmit,
			Data: discordgo.ModalSubmitInteractionData{CustomID: id},
		}}
	}

	assert.True(t, r.Route(command("website")))
	assert.False(t, r.Route(command("settings")))
	assert.True(t, r.Route(modal("event_modal:123")))
	assert.False(t, r.Route(modal("other:123")))
	assert.False(t, r.Route(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{Type: discordgo.InteractionPing}}))

	assert.Equal(t, []string{"website", "modal"}, called)
}
