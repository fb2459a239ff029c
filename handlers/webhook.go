package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/line/line-bot-sdk-go/v7/linebot"

	"availpoll/cliparse"
	"availpoll/notify"
)

// Keywords that ask the bot for the poll-creation link.
var createKeywords = map[string]bool{
	"日調":   true,
	"にっちょう": true,
	"日程調整": true,
}

type WebhookHandler struct {
	cfg      cliparse.Config
	notifier notify.Notifier
}

func NewWebhookHandler(cfg cliparse.Config, notifier notify.Notifier) *WebhookHandler {
	return &WebhookHandler{cfg: cfg, notifier: notifier}
}

// Callback handles POST /callback, the LINE Messaging API webhook.
//
// The reply to a creation keyword embeds the sender's user id in the link,
// so the creation page can pass it back in the create payload and the event
// carries its own notification subscriber. Nothing about the sender is kept
// in process state.
func (h *WebhookHandler) Callback(w http.ResponseWriter, r *http.Request) {
	events, err := linebot.ParseRequest(h.cfg.LineChannelSecret, r)
	if err != nil {
		if err == linebot.ErrInvalidSignature {
			slog.Warn("webhook signature validation failed", "remote", r.RemoteAddr)
			http.Error(w, "Invalid signature", http.StatusBadRequest)
			return
		}
		slog.Error("failed to parse webhook request", "error", err)
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	for _, event := range events {
		if event.Type != linebot.EventTypeMessage || event.Source == nil {
			continue
		}
		message, ok := event.Message.(*linebot.TextMessage)
		if !ok {
			continue
		}

		text := strings.ToLower(strings.TrimSpace(message.Text))
		userID := event.Source.UserID
		slog.Info("webhook message received", "user_id", userID)

		var reply string
		if createKeywords[text] {
			reply = "日程調整ページはこちらです\n" + h.cfg.BaseURL + "/?u=" + url.QueryEscape(userID)
		} else {
			reply = "日程調整を始める場合は「日調」または「日程調整」と送信してください。"
		}

		if err := h.notifier.Reply(event.ReplyToken, reply); err != nil {
			slog.Warn("webhook reply failed", "user_id", userID, "error", err)
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
