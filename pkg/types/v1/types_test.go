package v1

import "testing"

func TestWinPercentage(t *testing.T) {
	testcases := map[string]struct {
		team     Team
		expected int
	}{
		"no games played":  {Team{}, 0},
		"barcelona":        {Team{Wins: 25, Draws: 10, Losses: 3}, 66},
		"real madrid":      {Team{Wins: 24, Draws: 10, Losses: 4}, 63},
		"unbeaten":         {Team{Wins: 7}, 100},
		"rounds half up":   {Team{Wins: 1, Losses: 7}, 13},
		"all losses":       {Team{Losses: 12}, 0},
		"draws only count": {Team{Draws: 3}, 0},
	}

	for name, tc := range testcases {
		if got := tc.team.WinPercentage(); got != tc.expected {
			t.Fatalf("%s: expected win percentage %d but got %d", name, tc.expected, got)
		}
	}
}

func TestBadgeOrDefault(t *testing.T) {
	if got := (Team{}).BadgeOrDefault(); got != DefaultBadge {
		t.Fatalf("expected fallback badge %q but got %q", DefaultBadge, got)
	}
	if got := (Team{BadgeURL: "/old.png"}).BadgeOrDefault(); got != "/old.png" {
		t.Fatalf("expected legacy badge url to be used, got %q", got)
	}
	if got := (Team{Badge: "/new.png", BadgeURL: "/old.png"}).BadgeOrDefault(); got != "/new.png" {
		t.Fatalf("expected badge to win over legacy badge url, got %q", got)
	}
}

func TestGoalDifference(t *testing.T) {
	team := Team{GoalsFor: 75, GoalsAgainst: 30}
	if team.GoalDifference() != 45 {
		t.Fatalf("expected goal difference 45, got %d", team.GoalDifference())
	}
	if team.GamesPlayed() != 0 {
		t.Fatalf("expected no games played, got %d", team.GamesPlayed())
	}
}
