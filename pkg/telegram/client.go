package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

// Client talks to the Telegram Bot API over plain HTTP.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

type rawUpdate struct {
	Message *struct {
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
		Text string `json:"text"`
	} `json:"message"`
	CallbackQuery *struct {
		ID      string `json:"id"`
		Data    string `json:"data"`
		Message *struct {
			Chat struct {
				ID int64 `json:"id"`
			} `json:"chat"`
		} `json:"message"`
	} `json:"callback_query"`
}

func (c *Client) ParseUpdate(body []byte) (*Update, error) {
	var raw rawUpdate
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse telegram update: %w", err)
	}

	if raw.CallbackQuery != nil {
		if raw.CallbackQuery.Message == nil {
			return nil, nil
		}
		return &Update{
			ChatID:          raw.CallbackQuery.Message.Chat.ID,
			IsCallback:      true,
			CallbackQueryID: raw.CallbackQuery.ID,
			CallbackData:    raw.CallbackQuery.Data,
		}, nil
	}

	if raw.Message != nil {
		return &Update{
			ChatID: raw.Message.Chat.ID,
			Text:   raw.Message.Text,
		}, nil
	}

	return nil, nil
}

type sendMessageRequest struct {
	ChatID      int64        `json:"chat_id"`
	Text        string       `json:"text"`
	ReplyMarkup *replyMarkup `json:"reply_markup,omitempty"`
}

type replyMarkup struct {
	InlineKeyboard [][]inlineButton `json:"inline_keyboard"`
}

type inlineButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

type answerCallbackRequest struct {
	CallbackQueryID string `json:"callback_query_id"`
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	return c.call(ctx, "sendMessage", sendMessageRequest{ChatID: chatID, Text: text})
}

func (c *Client) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, buttons []Button) error {
	// One button per row keeps long Cyrillic labels readable on mobile.
	rows := make([][]inlineButton, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, []inlineButton{{Text: b.Label, CallbackData: b.Data}})
	}
	return c.call(ctx, "sendMessage", sendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: &replyMarkup{InlineKeyboard: rows},
	})
}

func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackQueryID string) error {
	return c.call(ctx, "answerCallbackQuery", answerCallbackRequest{CallbackQueryID: callbackQueryID})
}

func (c *Client) call(ctx context.Context, method string, payload interface{}) error {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram api error: %s %s", resp.Status, string(bodyBytes))
	}

	var apiResp struct {
		Ok          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(bodyBytes, &apiResp); err != nil {
		return fmt.Errorf("telegram api returned invalid JSON: %w", err)
	}
	if !apiResp.Ok {
		return fmt.Errorf("telegram api error: %s", apiResp.Description)
	}

	return nil
}
