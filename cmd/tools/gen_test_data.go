package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"time"

	"match-gateway/auth"
	"match-gateway/domain"
	"match-gateway/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
)

// Seeds a local store with chats and messages, and prints a signed access
// token per user so a browser or wscat session can connect right away.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	secret := flag.String("secret", "dev-secret", "HS256 secret shared with the gateway")
	chatCount := flag.Int("chats", 3, "Number of chats to seed, all involving user 1")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	ctx := context.Background()
	chatRepository := repositories.NewChatRepository(db, slog.Default())
	messageRepository := repositories.NewMessageRepository(db, slog.Default())

	for i := 1; i <= *chatCount; i++ {
		peer := domain.UserID(i + 1)
		chat := domain.Chat{ID: domain.ChatID(i), User1: 1, User2: peer}
		if err := chatRepository.Put(ctx, chat); err != nil {
			log.Fatal("Error while seeding chat: ", err)
		}
		if _, err := messageRepository.Create(ctx, chat.ID, 1, peer, fmt.Sprintf("Hello user %d!", peer)); err != nil {
			log.Fatal("Error while seeding message: ", err)
		}
		if _, err := messageRepository.Create(ctx, chat.ID, peer, 1, "Hello back!"); err != nil {
			log.Fatal("Error while seeding message: ", err)
		}
		fmt.Printf("Seeded chat %d between users 1 and %d\n", chat.ID, peer)
	}

	for userID := domain.UserID(1); int(userID) <= *chatCount+1; userID++ {
		token, err := auth.Sign(*secret, domain.Identity{UserID: userID, Verified: true}, 24*time.Hour)
		if err != nil {
			log.Fatal("Error while signing token: ", err)
		}
		fmt.Printf("accessToken for user %d:\n%s\n", userID, token)
	}
}
