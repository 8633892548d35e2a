package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	serverAddr string
	authToken  string
)

var rootCmd = &cobra.Command{
	Use:   "lawncli",
	Short: "CLI client for the lawn care timing service",
	Long:  `A command-line interface for querying seasonal timing windows and controlling watering countdown timers on a running lawn care server.`,
}

// --- Client Helper Functions ---

func callAPI(method, path string, query url.Values, body any) {
	u := serverAddr + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			log.Fatalf("Error encoding request body: %v", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, u, reqBody)
	if err != nil {
		log.Fatalf("Error building request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("Error contacting server (%s): %v\nIs the lawn care server running?", serverAddr, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Error reading response: %v", err)
	}

	if resp.StatusCode >= 400 {
		fmt.Fprintf(os.Stderr, "Error (%s): %s\n", resp.Status, string(data))
		os.Exit(1)
	}

	// Pretty print JSON responses
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		fmt.Println(string(data))
		return
	}
	fmt.Println(pretty.String())
}

// --- Command Definitions ---

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and print a bearer token for subsequent commands",
	Run: func(cmd *cobra.Command, args []string) {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		if username == "" || password == "" {
			log.Fatal("Error: --username and --password flags are required")
		}
		callAPI(http.MethodPost, "/auth/sign-in", nil, map[string]string{
			"username": username,
			"password": password,
		})
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the month-by-month activity schedule for a region",
	Run: func(cmd *cobra.Command, args []string) {
		region, _ := cmd.Flags().GetString("region")
		q := url.Values{}
		q.Set("region", region)
		callAPI(http.MethodGet, "/api/v1/timing/schedule", q, nil)
	},
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the timing window for an activity in a region",
	Run: func(cmd *cobra.Command, args []string) {
		region, _ := cmd.Flags().GetString("region")
		activity, _ := cmd.Flags().GetString("activity")
		if activity == "" {
			log.Fatal("Error: --activity flag is required (e.g., seeding, pre_emergent)")
		}
		q := url.Values{}
		q.Set("region", region)
		q.Set("activity", activity)
		callAPI(http.MethodGet, "/api/v1/timing/window", q, nil)
	},
}

var optimalCmd = &cobra.Command{
	Use:   "optimal",
	Short: "Check whether a month and soil temperature suit an activity",
	Run: func(cmd *cobra.Command, args []string) {
		region, _ := cmd.Flags().GetString("region")
		activity, _ := cmd.Flags().GetString("activity")
		month, _ := cmd.Flags().GetInt("month")
		temp, _ := cmd.Flags().GetInt("temp")
		if activity == "" {
			log.Fatal("Error: --activity flag is required")
		}
		if month < 1 || month > 12 {
			log.Fatal("Error: --month must be between 1 and 12")
		}
		q := url.Values{}
		q.Set("region", region)
		q.Set("activity", activity)
		q.Set("month", fmt.Sprintf("%d", month))
		q.Set("temp", fmt.Sprintf("%d", temp))
		callAPI(http.MethodGet, "/api/v1/timing/optimal", q, nil)
	},
}

var nextWindowCmd = &cobra.Command{
	Use:   "next-window",
	Short: "Show when the next window for an activity opens",
	Run: func(cmd *cobra.Command, args []string) {
		region, _ := cmd.Flags().GetString("region")
		activity, _ := cmd.Flags().GetString("activity")
		from, _ := cmd.Flags().GetString("from")
		if activity == "" {
			log.Fatal("Error: --activity flag is required")
		}
		if from != "" {
			if _, err := time.Parse("2006-01-02", from); err != nil {
				log.Fatalf("Error: invalid --from date, expected YYYY-MM-DD: %v", err)
			}
		}
		q := url.Values{}
		q.Set("region", region)
		q.Set("activity", activity)
		if from != "" {
			q.Set("from", from)
		}
		callAPI(http.MethodGet, "/api/v1/timing/next-window", q, nil)
	},
}

// Timer Command Group
var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Control watering countdown timers",
}

var timerCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a watering timer with the given duration in minutes",
	Run: func(cmd *cobra.Command, args []string) {
		minutes, _ := cmd.Flags().GetFloat64("minutes")
		if minutes <= 0 {
			log.Fatal("Error: --minutes must be greater than zero")
		}
		callAPI(http.MethodPost, "/api/v1/timers", nil, map[string]float64{
			"duration_minutes": minutes,
		})
	},
}

var timerStatusCmd = &cobra.Command{
	Use:   "status <timer-id>",
	Short: "Show the current status of a timer",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		callAPI(http.MethodGet, "/api/v1/timers/"+args[0], nil, nil)
	},
}

func timerTransitionCmd(verb, short string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <timer-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			callAPI(http.MethodPost, "/api/v1/timers/"+args[0]+"/"+verb, nil, nil)
		},
	}
}

func main() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", "http://localhost:8080", "Base URL of the lawn care server")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", os.Getenv("LAWNCARE_TOKEN"), "Bearer token (default: LAWNCARE_TOKEN env var)")

	loginCmd.Flags().StringP("username", "u", "", "Account username (required)")
	loginCmd.Flags().StringP("password", "p", "", "Account password (required)")
	rootCmd.AddCommand(loginCmd)

	for _, c := range []*cobra.Command{scheduleCmd, windowCmd, optimalCmd, nextWindowCmd} {
		c.Flags().StringP("region", "r", "central", "Climate region (northern, central, southern)")
	}
	windowCmd.Flags().StringP("activity", "a", "", "Lawn care activity (required)")
	optimalCmd.Flags().StringP("activity", "a", "", "Lawn care activity (required)")
	optimalCmd.Flags().IntP("month", "m", 0, "Month number 1-12 (required)")
	optimalCmd.Flags().IntP("temp", "t", 0, "Soil temperature in °F")
	nextWindowCmd.Flags().StringP("activity", "a", "", "Lawn care activity (required)")
	nextWindowCmd.Flags().StringP("from", "f", "", "Reference date YYYY-MM-DD (default: today)")
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(optimalCmd)
	rootCmd.AddCommand(nextWindowCmd)

	// --- Timer Commands ---
	timerCreateCmd.Flags().Float64P("minutes", "m", 0, "Countdown duration in minutes (required)")
	timerCmd.AddCommand(timerCreateCmd)
	timerCmd.AddCommand(timerStatusCmd)
	timerCmd.AddCommand(timerTransitionCmd("start", "Start or resume a timer"))
	timerCmd.AddCommand(timerTransitionCmd("pause", "Pause a running timer"))
	timerCmd.AddCommand(timerTransitionCmd("resume", "Resume a paused timer"))
	timerCmd.AddCommand(timerTransitionCmd("reset", "Reset a timer to its full duration"))
	rootCmd.AddCommand(timerCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}
