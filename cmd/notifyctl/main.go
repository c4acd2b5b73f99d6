// cmd/notifyctl/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"notification-client/client"
	"notification-client/internal/common/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	c, err := client.New(cfg, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "client: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var cmdErr error
	switch os.Args[1] {
	case "send-email":
		cmdErr = sendEmail(ctx, c, os.Args[2:])
	case "send-sms":
		cmdErr = sendSMS(ctx, c, os.Args[2:])
	case "send-push":
		cmdErr = sendPush(ctx, c, os.Args[2:])
	case "status":
		cmdErr = status(ctx, c, os.Args[2:])
	case "health":
		cmdErr = health(ctx, c)
	case "metrics":
		cmdErr = metrics(ctx, c)
	default:
		usage()
		os.Exit(2)
	}

	if cmdErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", cmdErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: notifyctl <send-email|send-sms|send-push|status|health|metrics> [flags]")
}

func sendEmail(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("send-email", flag.ExitOnError)
	to := fs.String("to", "", "recipient email address")
	subject := fs.String("subject", "", "email subject")
	template := fs.String("template", "", "template ID")
	vars := fs.String("vars", "", "template variables as JSON")
	_ = fs.Parse(args)

	variables, err := parseVars(*vars)
	if err != nil {
		return err
	}

	resp, err := c.SendEmail(ctx, *to, *subject, *template, variables)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func sendSMS(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("send-sms", flag.ExitOnError)
	to := fs.String("to", "", "recipient phone number (international format)")
	template := fs.String("template", "", "template ID")
	vars := fs.String("vars", "", "template variables as JSON")
	_ = fs.Parse(args)

	variables, err := parseVars(*vars)
	if err != nil {
		return err
	}

	resp, err := c.SendSMS(ctx, *to, *template, variables)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func sendPush(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("send-push", flag.ExitOnError)
	user := fs.String("user", "", "recipient user ID")
	title := fs.String("title", "", "notification title")
	body := fs.String("body", "", "notification body")
	template := fs.String("template", "", "template ID")
	vars := fs.String("vars", "", "template variables as JSON")
	_ = fs.Parse(args)

	variables, err := parseVars(*vars)
	if err != nil {
		return err
	}

	resp, err := c.SendPushToUser(ctx, *user, *title, *body, *template, variables)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func status(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	id := fs.String("id", "", "notification ID")
	_ = fs.Parse(args)

	resp, err := c.GetStatus(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func health(ctx context.Context, c *client.Client) error {
	resp, err := c.GetProviderHealth(ctx)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func metrics(ctx context.Context, c *client.Client) error {
	resp, err := c.GetMetrics(ctx)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func parseVars(raw string) (map[string]interface{}, error) {
	if raw == "" {
		return nil, nil
	}
	var variables map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &variables); err != nil {
		return nil, fmt.Errorf("parse -vars: %w", err)
	}
	return variables, nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
