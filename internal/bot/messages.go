package bot

import (
	"errors"

	"github.com/bwmarrin/discordgo"

	"niseyomi/internal/companion"
	"niseyomi/internal/log"
	"niseyomi/internal/mirror"
	"niseyomi/internal/permalink"
)

const notFoundNotice = "Message not found."

// HandleMessage runs the link mirror and then the link rewriter on m.
func (b *Bot) HandleMessage(m *discordgo.Message) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == b.selfID {
		return
	}
	b.mirrorLink(m)
	b.rewriteLinks(m)
}

// mirrorLink posts a preview of the first message permalink in m.
func (b *Bot) mirrorLink(m *discordgo.Message) {
	link, ok := permalink.Find(m.Content)
	if !ok {
		return
	}

	channel, target, err := permalink.Resolve(b.client, link)
	if errors.Is(err, permalink.ErrNotFound) {
		log.Debug("linked message not found", "channel", link.ChannelID, "message", link.MessageID, log.Err(err))
		if _, err := b.client.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{Content: notFoundNotice}); err != nil {
			log.Warn("failed to send not found notice", "channel", m.ChannelID, log.Err(err))
		}
		return
	}
	if err != nil {
		log.Warn("failed to resolve message link", "channel", link.ChannelID, "message", link.MessageID, log.Err(err))
		return
	}

	embed, components := mirror.Build(target, channel, link.URL())
	sent, err := b.client.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		log.Warn("failed to send mirror", "channel", m.ChannelID, "source", target.ID, log.Err(err))
		return
	}
	b.registry.Register(m.ID, companion.Companion{
		Kind:      companion.KindMirror,
		ChannelID: m.ChannelID,
		MessageID: sent.ID,
	})
}

// rewriteLinks replies with the mirror-domain version of m when it has
// x.com or twitter.com links, and hides the original embeds.
func (b *Bot) rewriteLinks(m *discordgo.Message) {
	text, changed := b.rewriter.Rewrite(m.Content)
	if !changed {
		return
	}

	_, err := b.client.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:      m.ID,
		Channel: m.ChannelID,
		Flags:   discordgo.MessageFlagsSuppressEmbeds,
	})
	if err != nil {
		log.Warn("failed to suppress embeds", "channel", m.ChannelID, "message", m.ID, log.Err(err))
	}

	sent, err := b.client.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content:   text,
		Reference: m.Reference(),
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse:       []discordgo.AllowedMentionType{},
			RepliedUser: false,
		},
	})
	if err != nil {
		log.Warn("failed to send rewritten links", "channel", m.ChannelID, "message", m.ID, log.Err(err))
		return
	}
	b.registry.Register(m.ID, companion.Companion{
		Kind:      companion.KindRewrite,
		ChannelID: m.ChannelID,
		MessageID: sent.ID,
	})
}
