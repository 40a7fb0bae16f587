package client

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fako1024/httpc"

	"github.com/accessdomain/fwengine/pkg/endpointdomain"
)

// Ping sends data to the server's echo endpoint and returns what comes back.
func (c *DefaultClient) Ping(ctx context.Context, data []byte) ([]byte, error) {
	type body struct {
		Data []byte `json:"data"`
	}
	var res body

	req := c.Modify(ctx,
		httpc.NewWithClient(http.MethodPost, c.NewURL("/v1/ping"), c.Client()).
			EncodeJSON(body{Data: data}).
			ParseJSON(&res),
	)
	if err := req.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("ping failed: %w", err)
	}
	return res.Data, nil
}

// AccessByAddressIngress streams the ingress endpoint domains admitted
// for address under handle, invoking fn for each record it decodes. fn
// returning an error aborts the stream.
func (c *DefaultClient) AccessByAddressIngress(ctx context.Context, handle, address string, fn func(endpointdomain.Domain) error) error {
	return c.streamAccess(ctx, "/v1/access/ingress/"+address, handle, fn)
}

// AccessByAddressEgress is the egress counterpart to AccessByAddressIngress.
func (c *DefaultClient) AccessByAddressEgress(ctx context.Context, handle, address string, fn func(endpointdomain.Domain) error) error {
	return c.streamAccess(ctx, "/v1/access/egress/"+address, handle, fn)
}

func (c *DefaultClient) streamAccess(ctx context.Context, path, handle string, fn func(endpointdomain.Domain) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.NewURL(path)+"?handle="+handle, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.name)

	resp, err := c.Client().Do(req)
	if err != nil {
		return fmt.Errorf("access request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("access request failed: %s", resp.Status)
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var errLine struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(line, &errLine); err == nil && errLine.Error != "" {
			return fmt.Errorf("access stream error: %s", errLine.Error)
		}

		var domain endpointdomain.Domain
		if err := json.Unmarshal(line, &domain); err != nil {
			return fmt.Errorf("failed to decode access record: %w", err)
		}
		if err := fn(domain); err != nil {
			return err
		}
	}
	return scanner.Err()
}
