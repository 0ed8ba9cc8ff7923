package models

import (
	"encoding/json"
	"testing"
)

func TestFlexUnmarshal_AllStrings(t *testing.T) {
	input := `{"mode": "control", "map_one": "harbor", "map_two": "foundry", "weapon": "smg", "wins": "7", "losses": "3", "fatigue": "2", "irritability": "1", "concentration": "4", "start_xp": "2180.0", "end_xp": "2245", "note": "evening session"}`

	var req CreateRecordRequest
	if err := json.Unmarshal([]byte(input), &req); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if req.Mode != "control" {
		t.Errorf("Mode = %q, want control", req.Mode)
	}
	if req.Wins != 7 {
		t.Errorf("Wins = %d, want 7", req.Wins)
	}
	if req.Losses != 3 {
		t.Errorf("Losses = %d, want 3", req.Losses)
	}
	if req.StartXP != 2180 {
		t.Errorf("StartXP = %d, want 2180", req.StartXP)
	}
	if req.EndXP != 2245 {
		t.Errorf("EndXP = %d, want 2245", req.EndXP)
	}
	if req.Note != "evening session" {
		t.Errorf("Note = %q, want evening session", req.Note)
	}
}

func TestFlexUnmarshal_NativeTypes(t *testing.T) {
	input := `{"mode": "escort", "map_one": "canyon", "map_two": "terminal", "weapon": "sniper", "wins": 4, "losses": 6, "fatigue": 3, "irritability": 3, "concentration": 2, "start_xp": 1950, "end_xp": 1898}`

	var req CreateRecordRequest
	if err := json.Unmarshal([]byte(input), &req); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if req.Weapon != "sniper" {
		t.Errorf("Weapon = %q, want sniper", req.Weapon)
	}
	if req.EndXP != 1898 {
		t.Errorf("EndXP = %d, want 1898", req.EndXP)
	}
}

func TestFlexUnmarshal_MixedTypes(t *testing.T) {
	input := `{"mode": "capture", "map_one": "citadel", "map_two": "district", "weapon": "lmg", "wins": "5", "losses": 5, "fatigue": 4, "irritability": "4", "concentration": 3, "start_xp": 2400, "end_xp": "2388"}`

	var req CreateRecordRequest
	if err := json.Unmarshal([]byte(input), &req); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if req.Wins != 5 || req.Losses != 5 {
		t.Errorf("Wins/Losses = %d/%d, want 5/5", req.Wins, req.Losses)
	}
	if req.Irritability != 4 {
		t.Errorf("Irritability = %d, want 4", req.Irritability)
	}
	if req.EndXP != 2388 {
		t.Errorf("EndXP = %d, want 2388", req.EndXP)
	}
}
