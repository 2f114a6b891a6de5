package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
)

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com"
	defaultModel    = "gemini-1.5-flash"
)

var ErrEmptyAnswer = fmt.Errorf("classifier returns an empty answer")

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type candidate struct {
	Content content `json:"content"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

// Client asks a language model which facilities in a list are relevant
// to a medical condition. Callers must treat it as best effort and fall
// back to the unfiltered list on any error.
type Client struct {
	httpClient *http.Client
	endpoint   string
	model      string
	apiKey     string
}

func New(client *http.Client, endpoint, model, apiKey string) *Client {
	e := defaultEndpoint
	if endpoint != "" {
		e = endpoint
	}
	m := defaultModel
	if model != "" {
		m = model
	}

	return &Client{
		httpClient: client,
		endpoint:   e,
		model:      m,
		apiKey:     apiKey,
	}
}

// RankRelevance returns the zero-based indexes of facilities relevant
// to the condition, in the model's preferred order.
func (c *Client) RankRelevance(ctx context.Context, condition string, facilities []string) ([]int, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "A patient needs: %s.\n", condition)
	b.WriteString("From the numbered list of medical facilities below, pick the ones most likely to help, best first.\n")
	b.WriteString("Answer with a JSON array of the list numbers only.\n")
	for i, name := range facilities {
		fmt.Fprintf(&b, "%d. %s\n", i, name)
	}

	answer, err := c.generate(ctx, b.String())
	if err != nil {
		return nil, err
	}

	var indexes []int
	if err := json.Unmarshal([]byte(stripCodeFence(answer)), &indexes); err != nil {
		return nil, fmt.Errorf("classifier answer is not a JSON array: %s", err.Error())
	}

	valid := make([]int, 0, len(indexes))
	for _, i := range indexes {
		if i >= 0 && i < len(facilities) {
			valid = append(valid, i)
		}
	}

	return valid, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	reqBody, err := json.Marshal(generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("classifier responds with status: %d", resp.StatusCode)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyAnswer
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// stripCodeFence removes a markdown code fence wrapper, which the model
// adds even when told not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
