package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	semaphore "github.com/kitabist/semaphore-go"
	"github.com/kitabist/semaphore-go/internal/config"
)

// sendsms is a small CLI for poking the provider directly: send a one-off
// message or print the account balance. Reads SEMAPHORE_API_KEY from the
// environment/.env like the API server does.
func main() {
	var (
		to       = flag.String("to", "", "recipient phone number")
		message  = flag.String("message", "", "message body")
		sender   = flag.String("sender", "", "sender name (defaults to SEMAPHORE_SENDER_NAME)")
		priority = flag.Bool("priority", false, "send through the priority queue")
		balance  = flag.Bool("balance", false, "print account info instead of sending")
	)
	flag.Parse()

	cfg := config.New()

	client, err := semaphore.NewClient(
		cfg.Semaphore.APIKey,
		semaphore.WithTimeout(cfg.Semaphore.Timeout),
	)
	if err != nil {
		log.Fatalf("[SendSMS] Failed to create client: %v", err)
	}

	ctx := context.Background()

	if *balance {
		printResponse(client.GetAccount(ctx))
		return
	}

	if *to == "" || *message == "" {
		flag.Usage()
		os.Exit(2)
	}

	params := map[string]string{
		"number":  *to,
		"message": *message,
	}

	senderName := *sender
	if senderName == "" {
		senderName = cfg.Semaphore.SenderName
	}
	if senderName != "" {
		params["sendername"] = senderName
	}

	var resp semaphore.Response
	if *priority {
		resp = client.SendPriority(ctx, params)
	} else {
		resp = client.SendMessage(ctx, params)
	}

	printResponse(resp)
}

// printResponse pretty-prints the provider response and exits non-zero on failure.
func printResponse(resp semaphore.Response) {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.Fatalf("[SendSMS] Failed to render response: %v", err)
	}

	fmt.Println(string(out))

	if resp.Failed() {
		os.Exit(1)
	}
}
