// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

// Package rpc is the transaction-simulation collaborator: a thin Soroban
// JSON-RPC client whose only job is to turn a simulateTransaction preflight
// into a costmodel.SimulationResult for the analysis pipeline.
package rpc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/stellar/go/xdr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/gasguard/gasguard/internal/costmodel"
	"github.com/gasguard/gasguard/internal/errors"
	"github.com/gasguard/gasguard/internal/logger"
	"github.com/gasguard/gasguard/internal/telemetry"
)

// Network identifies a Stellar network.
type Network string

const (
	Testnet   Network = "testnet"
	Mainnet   Network = "mainnet"
	Futurenet Network = "futurenet"
)

// Soroban RPC URLs
const (
	TestnetSorobanURL   = "https://soroban-testnet.stellar.org"
	MainnetSorobanURL   = "https://mainnet.stellar.validationcloud.io/v1/soroban-rpc-demo" // Public demo endpoint
	FuturenetSorobanURL = "https://rpc-futurenet.stellar.org"
)

const defaultRequestTimeout = 30 * time.Second

// authTransport adds a Bearer token to outgoing requests.
type authTransport struct {
	token     string
	transport http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}
	return t.transport.RoundTrip(req)
}

// Client handles interactions with a Soroban RPC endpoint.
type Client struct {
	Network    Network
	SorobanURL string
	httpClient *http.Client
}

// NewClient creates a client for a named network. If network is empty it
// defaults to Mainnet. A token can be provided directly or via the
// GASGUARD_RPC_TOKEN environment variable.
func NewClient(net Network, token string) *Client {
	if net == "" {
		net = Mainnet
	}
	if token == "" {
		token = os.Getenv("GASGUARD_RPC_TOKEN")
	}

	var url string
	switch net {
	case Testnet:
		url = TestnetSorobanURL
	case Futurenet:
		url = FuturenetSorobanURL
	case Mainnet:
		fallthrough
	default:
		url = MainnetSorobanURL
	}

	if token != "" {
		logger.Logger.Debug("RPC client initialized with authentication")
	} else {
		logger.Logger.Debug("RPC client initialized without authentication")
	}

	return &Client{
		Network:    net,
		SorobanURL: url,
		httpClient: createHTTPClient(token),
	}
}

// NewClientWithURL creates a client against a custom Soroban RPC URL.
func NewClientWithURL(url string, net Network, token string) *Client {
	if token == "" {
		token = os.Getenv("GASGUARD_RPC_TOKEN")
	}
	return &Client{
		Network:    net,
		SorobanURL: url,
		httpClient: createHTTPClient(token),
	}
}

func createHTTPClient(token string) *http.Client {
	client := &http.Client{Timeout: defaultRequestTimeout}
	if token != "" {
		client.Transport = &authTransport{
			token:     token,
			transport: http.DefaultTransport,
		}
	}
	return client
}

type simulateTransactionRequest struct {
	Jsonrpc string                   `json:"jsonrpc"`
	ID      int                      `json:"id"`
	Method  string                   `json:"method"`
	Params  simulateTransactionParam `json:"params"`
}

type simulateTransactionParam struct {
	Transaction string `json:"transaction"`
}

// SimulateTransactionResponse mirrors the simulateTransaction JSON-RPC
// response. Cost is reported by older RPC servers only; newer servers expose
// instructions solely through the transactionData XDR.
type SimulateTransactionResponse struct {
	Jsonrpc string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Result  struct {
		TransactionData string `json:"transactionData"`
		MinResourceFee  string `json:"minResourceFee"`
		Cost            struct {
			CpuInsns string `json:"cpuInsns"`
			MemBytes string `json:"memBytes"`
		} `json:"cost"`
		Error        string `json:"error,omitempty"`
		LatestLedger int64  `json:"latestLedger"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// SimulateTransaction submits a base64 transaction envelope for preflight
// simulation and returns the raw response.
func (c *Client) SimulateTransaction(ctx context.Context, envelopeXdr string) (*SimulateTransactionResponse, error) {
	tracer := telemetry.GetTracer()
	ctx, span := tracer.Start(ctx, "rpc_simulate_transaction")
	span.SetAttributes(attribute.String("network", string(c.Network)))
	defer span.End()

	logger.Logger.Debug("Simulating transaction", "url", c.SorobanURL, "network", c.Network)

	reqBody := simulateTransactionRequest{
		Jsonrpc: "2.0",
		ID:      1,
		Method:  "simulateTransaction",
		Params:  simulateTransactionParam{Transaction: envelopeXdr},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.WrapMarshalFailed(err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.SorobanURL, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, errors.WrapRPCConnectionFailed(err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var rpcResp SimulateTransactionResponse
	if err := json.Unmarshal(respBytes, &rpcResp); err != nil {
		return nil, errors.WrapUnmarshalFailed(err, string(respBytes))
	}

	if rpcResp.Error != nil {
		return nil, fmt.Errorf("rpc error: %s (code %d)", rpcResp.Error.Message, rpcResp.Error.Code)
	}
	if rpcResp.Result.Error != "" {
		return nil, errors.WrapSimulationFailed(rpcResp.Result.Error)
	}

	return &rpcResp, nil
}

// FetchSimulationResult runs a preflight and converts the response into the
// cost model's input record. The transactionData XDR supplies the footprint
// and byte volumes; the decoded envelope length supplies the transaction
// size.
func (c *Client) FetchSimulationResult(ctx context.Context, envelopeXdr string) (*costmodel.SimulationResult, error) {
	resp, err := c.SimulateTransaction(ctx, envelopeXdr)
	if err != nil {
		return nil, err
	}

	envelopeBytes, err := base64.StdEncoding.DecodeString(envelopeXdr)
	if err != nil {
		return nil, errors.WrapInvalidInput("transaction envelope is not valid base64")
	}

	sim, err := simulationResultFromResponse(resp, int64(len(envelopeBytes)))
	if err != nil {
		return nil, err
	}

	logger.Logger.Info("Simulation preflight complete",
		"instructions", sim.Instructions,
		"memory_bytes", sim.MemoryBytes,
		"reads", len(sim.Resources.Footprint.ReadOnly),
		"writes", len(sim.Resources.Footprint.ReadWrite),
	)

	return sim, nil
}

func simulationResultFromResponse(resp *SimulateTransactionResponse, envelopeSize int64) (*costmodel.SimulationResult, error) {
	var txData xdr.SorobanTransactionData
	if err := xdr.SafeUnmarshalBase64(resp.Result.TransactionData, &txData); err != nil {
		return nil, errors.WrapUnmarshalFailed(err, "transactionData")
	}

	readOnly, err := encodeLedgerKeys(txData.Resources.Footprint.ReadOnly)
	if err != nil {
		return nil, err
	}
	readWrite, err := encodeLedgerKeys(txData.Resources.Footprint.ReadWrite)
	if err != nil {
		return nil, err
	}

	instructions := int64(txData.Resources.Instructions)
	if v, err := strconv.ParseInt(resp.Result.Cost.CpuInsns, 10, 64); err == nil && v > 0 {
		instructions = v
	}

	var memoryBytes int64
	if v, err := strconv.ParseInt(resp.Result.Cost.MemBytes, 10, 64); err == nil {
		memoryBytes = v
	}

	return &costmodel.SimulationResult{
		Instructions: instructions,
		MemoryBytes:  memoryBytes,
		Resources: costmodel.SorobanResources{
			Footprint: costmodel.Footprint{
				ReadOnly:  readOnly,
				ReadWrite: readWrite,
			},
			Instructions: int64(txData.Resources.Instructions),
			ReadBytes:    int64(txData.Resources.DiskReadBytes),
			WriteBytes:   int64(txData.Resources.WriteBytes),
		},
		TransactionSizeBytes: envelopeSize,
	}, nil
}

// encodeLedgerKeys renders footprint keys back to base64 XDR strings, the
// opaque identifier form the cost model counts.
func encodeLedgerKeys(keys []xdr.LedgerKey) ([]string, error) {
	encoded := make([]string, 0, len(keys))
	for _, key := range keys {
		s, err := xdr.MarshalBase64(key)
		if err != nil {
			return nil, errors.WrapUnmarshalFailed(err, "ledger key")
		}
		encoded = append(encoded, s)
	}
	return encoded, nil
}
