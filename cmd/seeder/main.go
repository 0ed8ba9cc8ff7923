// Seeder posts synthetic match records to a running API instance. This is
// the only place randomness exists; the prediction engine itself is fully
// deterministic.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"
)

var (
	apiURL  = flag.String("url", "http://localhost:8080/api/v1/records", "record endpoint")
	count   = flag.Int("count", 200, "records to generate")
	users   = flag.Int("users", 5, "distinct user ids")
	seed    = flag.Int64("seed", 0, "rng seed (0 = time-based)")
	skewBad = flag.Float64("tilt", 0.1, "per-user win-rate tilt range")
)

var (
	modes   = []string{"control", "escort", "payload", "capture"}
	weapons = []string{"assault_rifle", "carbine", "smg", "shotgun", "sniper", "dmr", "lmg", "pistol"}
	maps    = []string{"harbor", "foundry", "canyon", "terminal", "overgrowth", "citadel", "reservoir", "district"}
)

type record struct {
	UserID        *int64 `json:"user_id,omitempty"`
	PlayedAt      string `json:"played_at"`
	Mode          string `json:"mode"`
	MapOne        string `json:"map_one"`
	MapTwo        string `json:"map_two"`
	Weapon        string `json:"weapon"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Fatigue       int    `json:"fatigue"`
	Irritability  int    `json:"irritability"`
	Concentration int    `json:"concentration"`
	StartXP       int    `json:"start_xp"`
	EndXP         int    `json:"end_xp"`
	Note          string `json:"note"`
}

func main() {
	flag.Parse()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))
	log.Printf("seeding %d records for %d users (seed %d)", *count, *users, s)

	// Per-user skill tilt and a rating cursor so XP walks look plausible.
	tilt := make([]float64, *users)
	xp := make([]int, *users)
	for i := range tilt {
		tilt[i] = (rng.Float64()*2 - 1) * *skewBad
		xp[i] = 1800 + rng.Intn(800)
	}

	start := time.Now().AddDate(0, -3, 0)

	for i := 0; i < *count; i++ {
		u := rng.Intn(*users)
		userID := int64(u + 1)

		games := 4 + rng.Intn(9)
		winRate := clamp(0.5+tilt[u]+rng.NormFloat64()*0.12, 0.05, 0.95)
		wins := 0
		for g := 0; g < games; g++ {
			if rng.Float64() < winRate {
				wins++
			}
		}
		losses := games - wins

		delta := (wins-losses)*12 + rng.Intn(11) - 5
		startXP := xp[u]
		xp[u] += delta

		mapOne := maps[rng.Intn(len(maps))]
		mapTwo := maps[rng.Intn(len(maps))]
		for mapTwo == mapOne {
			mapTwo = maps[rng.Intn(len(maps))]
		}

		rec := record{
			UserID:        &userID,
			PlayedAt:      start.Add(time.Duration(i) * 37 * time.Minute).UTC().Format(time.RFC3339),
			Mode:          modes[rng.Intn(len(modes))],
			MapOne:        mapOne,
			MapTwo:        mapTwo,
			Weapon:        weapons[rng.Intn(len(weapons))],
			Wins:          wins,
			Losses:        losses,
			Fatigue:       1 + rng.Intn(5),
			Irritability:  1 + rng.Intn(5),
			Concentration: 1 + rng.Intn(5),
			StartXP:       startXP,
			EndXP:         startXP + delta,
			Note:          "seeded",
		}

		if err := post(rec); err != nil {
			log.Fatalf("record %d: %v", i, err)
		}
	}

	log.Printf("done")
}

func post(rec record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	resp, err := http.Post(*apiURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
