// Package llm defines the pluggable LLM primitive and its gRPC
// implementation. The orchestrator only depends on the Client interface;
// tests inject fakes.
package llm

import (
	"context"
	"fmt"
	"os"

	llmv1 "github.com/maestro-run/maestro/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Response is the structured result of a single chat call.
type Response struct {
	Content      string  `json:"content"`
	Model        string  `json:"model"`
	Provider     string  `json:"provider"`
	InputTokens  int64   `json:"input_tokens"`
	OutputTokens int64   `json:"output_tokens"`
	LatencyMS    int64   `json:"latency_ms"`
	Cost         float64 `json:"cost"`
	Cached       bool    `json:"cached"`
}

// Client is the LLM primitive injected into the orchestrator.
type Client interface {
	Chat(ctx context.Context, prompt string) (*Response, error)
}

// GRPCClient implements Client by calling the external LLM service.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.ChatServiceClient
	model  string
}

// NewGRPCClient creates a gRPC LLM client. grpc.NewClient dials lazily;
// the actual connection is established on the first RPC.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: llmv1.NewChatServiceClient(conn),
		model:  os.Getenv("LLM_MODEL"),
	}, nil
}

// Chat sends a prompt and returns the structured response.
func (c *GRPCClient) Chat(ctx context.Context, prompt string) (*Response, error) {
	resp, err := c.client.Chat(ctx, &llmv1.ChatRequest{
		Prompt: prompt,
		Model:  c.model,
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC Chat call failed: %w", err)
	}
	return &Response{
		Content:      resp.Content,
		Model:        resp.Model,
		Provider:     resp.Provider,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
		LatencyMS:    resp.LatencyMs,
		Cost:         resp.Cost,
		Cached:       resp.Cached,
	}, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
