package notify

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Notifier delivers chat messages to a single user. Delivery is best-effort
// everywhere it is used: callers log failures and move on.
type Notifier interface {
	Push(userID, text string) error
	Reply(replyToken, text string) error
}

// LineNotifier sends messages through the LINE Messaging API.
type LineNotifier struct {
	bot *linebot.Client
}

func NewLineNotifier(channelSecret, channelToken string) (*LineNotifier, error) {
	// Bounded timeout: a slow LINE API must not stall request handling
	bot, err := linebot.New(channelSecret, channelToken,
		linebot.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}))
	if err != nil {
		return nil, err
	}
	return &LineNotifier{bot: bot}, nil
}

func (n *LineNotifier) Push(userID, text string) error {
	_, err := n.bot.PushMessage(userID, linebot.NewTextMessage(text)).Do()
	return err
}

func (n *LineNotifier) Reply(replyToken, text string) error {
	_, err := n.bot.ReplyMessage(replyToken, linebot.NewTextMessage(text)).Do()
	return err
}

// Nop stands in when LINE credentials are not configured.
type Nop struct{}

func (Nop) Push(userID, text string) error {
	slog.Debug("notification skipped, no notifier configured", "user_id", userID)
	return nil
}

func (Nop) Reply(replyToken, text string) error {
	return nil
}
