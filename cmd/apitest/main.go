// Package main implements a CLI tool for smoke-testing a running
// Promptforge server: it can mint and check verification tokens locally and
// submit a test generate request over HTTP.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"promptforge/internal/auth"
	"promptforge/pkg/utils"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "Base URL of the running server")
	topic := flag.String("topic", "write a friendly reminder email", "Topic for the test generate request")
	mode := flag.String("mode", "reframe_casual", "Feature mode for the test generate request")
	token := flag.String("token", "", "Session token to send as the bearer credential (optional)")
	verifyEmail := flag.String("verify-email", "", "Mint and self-check a verification token for this address instead of calling the server")
	flag.Parse()

	if *verifyEmail != "" {
		checkVerificationToken(*verifyEmail)
		return
	}

	fmt.Println("🚀 Promptforge API Tester")
	fmt.Println("----------------------------")
	fmt.Printf("Server: %s\n", *server)
	fmt.Printf("Mode: %s\n", *mode)
	if *token != "" {
		fmt.Printf("Token: %s\n", utils.MaskToken(*token))
	} else {
		fmt.Println("Token: none (request will be admitted free or rejected with 402)")
	}

	body, err := json.Marshal(map[string]string{"topic": *topic, "mode": *mode})
	if err != nil {
		log.Fatalf("Error encoding request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, *server+"/generate", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Error building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if *token != "" {
		req.Header.Set("Authorization", "Bearer "+*token)
	}

	client := &http.Client{Timeout: 60 * time.Second}

	fmt.Println("\nSending request to /generate...")
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Error reading response: %v", err)
	}

	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Println("Response received:")
	fmt.Println("----------------------------")
	fmt.Println(string(respBody))
	fmt.Println("----------------------------")
}

// checkVerificationToken mints a verification token with the local secret
// and runs it through the checks a server would apply.
func checkVerificationToken(email string) {
	secret := os.Getenv("VERIFICATION_SECRET")
	if secret == "" {
		log.Fatal("VERIFICATION_SECRET must be set to mint verification tokens")
	}

	codec := auth.NewCodec(secret)
	token, err := codec.Issue(email)
	if err != nil {
		log.Fatalf("Error minting token: %v", err)
	}

	fmt.Println("🔍 Verification Token Check")
	fmt.Println("----------------------------")
	fmt.Printf("Email: %s\n", email)
	fmt.Printf("Token: %s\n", token)
	fmt.Printf("Checks out for this email: %v\n", codec.Check(email, token))
	fmt.Printf("Rejected for another email: %v\n", !codec.Check("other@example.com", token))
	fmt.Println("----------------------------")
}
