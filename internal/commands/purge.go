package commands

import (
	"fmt"
	"slices"
	"time"

	"github.com/bwmarrin/discordgo"

	"niseyomi/internal/chat"
	"niseyomi/internal/log"
)

const (
	historyPageSize = 100
	bulkDeleteLimit = 100
	// Discord refuses to bulk delete messages older than two weeks.
	bulkDeleteMaxAge = 14 * 24 * time.Hour
)

// Purge deletes every message authored by userID in channelID and returns
// how many were deleted. On error the count covers what was deleted before
// the failure.
func Purge(client chat.Client, channelID, userID string) (int, error) {
	recent, old, err := authoredBy(client, channelID, userID, time.Now())
	if err != nil {
		return 0, err
	}

	deleted := 0
	for chunk := range slices.Chunk(recent, bulkDeleteLimit) {
		if len(chunk) == 1 {
			err = client.ChannelMessageDelete(channelID, chunk[0])
		} else {
			err = client.ChannelMessagesBulkDelete(channelID, chunk)
		}
		if err != nil {
			return deleted, fmt.Errorf("failed to bulk delete in channel %s: %w", channelID, err)
		}
		deleted += len(chunk)
	}

	for _, id := range old {
		if err := client.ChannelMessageDelete(channelID, id); err != nil {
			if chat.IsNotFound(err) {
				continue
			}
			return deleted, fmt.Errorf("failed to delete message %s in channel %s: %w", id, channelID, err)
		}
		deleted++
	}
	return deleted, nil
}

// authoredBy pages through the channel history newest first and splits the
// user's messages by whether they can still be bulk deleted.
func authoredBy(client chat.Client, channelID, userID string, now time.Time) (recent, old []string, err error) {
	before := ""
	for {
		page, err := client.ChannelMessages(channelID, historyPageSize, before, "", "")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read history of channel %s: %w", channelID, err)
		}
		for _, m := range page {
			if m.Author == nil || m.Author.ID != userID {
				continue
			}
			if now.Sub(m.Timestamp) < bulkDeleteMaxAge {
				recent = append(recent, m.ID)
			} else {
				old = append(old, m.ID)
			}
		}
		if len(page) < historyPageSize {
			return recent, old, nil
		}
		before = page[len(page)-1].ID
	}
}

func invokerID(i *discordgo.InteractionCreate) string {
	switch {
	case i.Member != nil && i.Member.User != nil:
		return i.Member.User.ID
	case i.User != nil:
		return i.User.ID
	}
	return ""
}

func isAdmin(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

// deferEphemeral acknowledges a slow command; the result is sent with
// finish once the work is done.
func (h *Handlers) deferEphemeral(i *discordgo.InteractionCreate) bool {
	err := h.client.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		log.Warn("failed to defer interaction", "interaction", i.ID, log.Err(err))
		return false
	}
	return true
}

func (h *Handlers) finish(i *discordgo.InteractionCreate, content string) {
	if _, err := h.client.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
		log.Warn("failed to edit interaction response", "interaction", i.ID, log.Err(err))
	}
}

const permissionDenied = "You need the Administrator permission to use this command."

func (h *Handlers) DeleteMessages(i *discordgo.InteractionCreate) {
	if !isAdmin(i) {
		h.replyEphemeral(i, permissionDenied)
		return
	}
	opts := options(i)
	userOpt, hasUser := opts["user"]
	channelOpt, hasChannel := opts["channel"]
	if !hasUser || !hasChannel {
		h.replyEphemeral(i, "Both a user and a channel are required.")
		return
	}
	user := userOpt.UserValue(nil)
	channel := channelOpt.ChannelValue(nil)

	if !h.deferEphemeral(i) {
		return
	}
	n, err := Purge(h.client, channel.ID, user.ID)
	if err != nil {
		log.Warn("purge failed", "channel", channel.ID, "user", user.ID, "deleted", n, log.Err(err))
		h.finish(i, fmt.Sprintf("Deleted %d messages, then failed: %v", n, err))
		return
	}
	log.Info("purged messages", "channel", channel.ID, "user", user.ID, "deleted", n, "by", invokerID(i))
	h.finish(i, fmt.Sprintf("Deleted %d messages.", n))
}

// DeleteMessagesAll purges every text channel of the guild. A failing
// channel is counted and skipped.
func (h *Handlers) DeleteMessagesAll(i *discordgo.InteractionCreate) {
	if !isAdmin(i) {
		h.replyEphemeral(i, permissionDenied)
		return
	}
	userOpt, ok := options(i)["user"]
	if !ok {
		h.replyEphemeral(i, "A user is required.")
		return
	}
	user := userOpt.UserValue(nil)

	if !h.deferEphemeral(i) {
		return
	}
	channels, err := h.client.GuildChannels(i.GuildID)
	if err != nil {
		log.Warn("failed to list guild channels", "guild", i.GuildID, log.Err(err))
		h.finish(i, "Could not list the channels of this server.")
		return
	}

	total, failed := 0, 0
	for _, c := range channels {
		if c.Type != discordgo.ChannelTypeGuildText {
			continue
		}
		n, err := Purge(h.client, c.ID, user.ID)
		total += n
		if err != nil {
			failed++
			log.Warn("purge failed", "guild", i.GuildID, "channel", c.ID, "user", user.ID, log.Err(err))
		}
	}
	log.Info("purged messages in guild", "guild", i.GuildID, "user", user.ID, "deleted", total, "failed", failed)

	if failed > 0 {
		h.finish(i, fmt.Sprintf("Deleted %d messages (%d channels failed).", total, failed))
		return
	}
	h.finish(i, fmt.Sprintf("Deleted %d messages.", total))
}
