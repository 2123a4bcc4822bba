package main

import (
	"flag"
	"fmt"
	"log"

	"nodex-club.backend/pkg/crypto"
)

func main() {
	kind := flag.String("kind", "auth", "key kind: auth (recruiter) or access (member)")
	flag.Parse()

	switch *kind {
	case "auth":
		key, err := crypto.GenerateAuthKey()
		if err != nil {
			log.Fatalf("failed to generate auth key: %v", err)
		}
		fmt.Println("Generated recruiter auth key (store as-is in auth_keys)")
		fmt.Printf("AUTH_KEY=%s\n", key)

	case "access":
		key, err := crypto.GenerateAccessKey()
		if err != nil {
			log.Fatalf("failed to generate access key: %v", err)
		}
		hash, err := crypto.HashKey(key)
		if err != nil {
			log.Fatalf("failed to hash access key: %v", err)
		}
		fmt.Println("Generated member access key (hand the key to the member, store only the hash in member_keys)")
		fmt.Printf("ACCESS_KEY=%s\n", key)
		fmt.Printf("KEY_HASH=%s\n", hash)

	default:
		log.Fatalf("invalid kind: %s (allowed: auth, access)", *kind)
	}
}
