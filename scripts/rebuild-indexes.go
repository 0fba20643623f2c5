// Command rebuild-indexes repairs the redis character store. It rebuilds the
// id set and name hash from the stored records and reports records that no
// longer decode.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	idIndexKey         = "character:ids"
	nameIndexKey       = "character:names"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	client, err := redis.NewClientFromURL(redisURL, nil)
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning character records...")

	iter := client.Scan(ctx, 0, characterKeyPrefix+"*", 0).Iterator()

	ids := make(map[string]string)
	names := make(map[string]string)
	var corruptedKeys []string
	var duplicates []string

	for iter.Next(ctx) {
		key := iter.Val()
		if key == idIndexKey || key == nameIndexKey {
			continue
		}

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var c dnd5e.Character
		if err := json.Unmarshal([]byte(data), &c); err != nil || c.ID == "" {
			fmt.Printf("✗ Corrupted record in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}
		if id := strings.TrimPrefix(key, characterKeyPrefix); id != c.ID {
			fmt.Printf("✗ Key %s holds character %s\n", key, c.ID)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		ids[c.ID] = c.CharacterName
		if owner, ok := names[c.CharacterName]; ok {
			duplicates = append(duplicates, fmt.Sprintf("%q: %s and %s", c.CharacterName, owner, c.ID))
			continue
		}
		names[c.CharacterName] = c.ID
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nFound %d characters, %d corrupted records\n", len(ids), len(corruptedKeys))
	for _, d := range duplicates {
		fmt.Printf("⚠️  Duplicate name %s (first one keeps the name)\n", d)
	}

	pipe := client.TxPipeline()
	pipe.Del(ctx, idIndexKey, nameIndexKey)
	for id := range ids {
		pipe.SAdd(ctx, idIndexKey, id)
	}
	for name, id := range names {
		pipe.HSet(ctx, nameIndexKey, name, id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Fatal("Failed to rebuild indexes:", err)
	}
	fmt.Println("Rebuilt character:ids and character:names")

	if len(corruptedKeys) == 0 {
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - corrupted records kept")
		return
	}
	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}
