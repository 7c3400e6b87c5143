package dialogue

import (
	"fmt"
	"strings"

	"course-advisor-be/pkg/lexicon"
)

const (
	emptyScoresHint   = "I need a bit more information to make good recommendations."
	lowScoresHint     = "Keep telling me about your interests so I can better understand your preferences!"
	maxSummaryEntries = 3
	maxInsightCareers = 5
)

func (e *Engine) renderTurnReply(state *State) string {
	var parts []string

	switch state.Stage() {
	case StageEarly:
		ack := "Thanks for sharing!"
		if state.TurnCount == 1 {
			ack = "Nice!"
		}
		parts = append(parts, ack+" "+e.formatScores(state))
		parts = append(parts, e.questionBatch(lexicon.EarlyQuestions))
	case StageMid:
		parts = append(parts, "Thanks for sharing! "+e.formatScores(state))
		parts = append(parts, e.questionBatch(lexicon.MidQuestions))
	default: // StageLate
		parts = append(parts, "I'm getting a clearer picture! "+e.formatScores(state))
		parts = append(parts, e.insightBlock(state))
		parts = append(parts, e.invitation())
	}

	return strings.Join(parts, "\n\n")
}

// formatScores renders the ranked interim summary, hiding categories at or
// below the report threshold and capping at the top three.
func (e *Engine) formatScores(state *State) string {
	ranked := e.Ranking(state)

	any := false
	for _, r := range ranked {
		if r.Score > 0 {
			any = true
			break
		}
	}
	if !any {
		return emptyScoresHint
	}

	var b strings.Builder
	shown := 0
	b.WriteString("Based on what you've told me:\n")
	for _, r := range ranked {
		if r.Score <= e.reportThreshold || shown >= maxSummaryEntries {
			continue
		}
		fmt.Fprintf(&b, "• %s: %.2f%% match\n", strings.ToUpper(string(r.Category)), r.Score)
		shown++
	}
	if shown == 0 {
		return lowScoresHint
	}
	return b.String()
}

// questionBatch renders the fixed per-stage follow-up batch.
func (e *Engine) questionBatch(questions []string) string {
	var b strings.Builder
	b.WriteString("A few things I'm curious about:\n")
	for _, q := range questions {
		b.WriteString("- " + q + "\n")
	}
	return b.String()
}

// insightBlock details the single strongest category: blurb plus a sample of
// career titles.
func (e *Engine) insightBlock(state *State) string {
	top := e.Ranking(state)[0]
	info, ok := e.lex.Info(top.Category)
	if !ok {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your strongest match so far is %s.\n%s\n", strings.ToUpper(string(top.Category)), info.Blurb)
	b.WriteString("Careers this can lead to:\n")
	for i, career := range info.Careers {
		if i >= maxInsightCareers {
			break
		}
		b.WriteString("- " + career + "\n")
	}
	return b.String()
}

// invitation closes a late-stage reply: go deeper, pivot, or wrap up. The
// fixed schedule of questions is exhausted by now, so one more is sampled
// from the general pool.
func (e *Engine) invitation() string {
	q := lexicon.FollowUpQuestions[e.sample(len(lexicon.FollowUpQuestions))]
	return "Want to go deeper into your top match, or explore a different direction? " + q +
		" (Say 'bye' whenever you'd like your final summary.)"
}

func (e *Engine) renderFinalReport(state *State) string {
	var parts []string
	parts = append(parts, strings.Repeat("=", 40))
	parts = append(parts, "Thank you for chatting with me! Here's your personalized summary:")
	parts = append(parts, strings.Repeat("=", 40))

	ranked := e.Ranking(state)
	matched := make([]Ranked, 0, maxSummaryEntries)
	for _, r := range ranked {
		if r.Score > 0 && len(matched) < maxSummaryEntries {
			matched = append(matched, r)
		}
	}

	if len(matched) == 0 {
		parts = append(parts, "Keep exploring different subjects to discover what you truly love!")
	} else {
		parts = append(parts, "YOUR COURSE MATCHES:")
		for i, r := range matched {
			info, _ := e.lex.Info(r.Category)
			parts = append(parts, fmt.Sprintf("%s: %.1f%% match\n    %s", strings.ToUpper(string(r.Category)), r.Score, info.Blurb))
			if i == 0 && len(info.Careers) > 0 {
				var b strings.Builder
				b.WriteString("    Sample careers: ")
				for j, career := range info.Careers {
					if j >= maxInsightCareers {
						break
					}
					if j > 0 {
						b.WriteString(", ")
					}
					b.WriteString(career)
				}
				parts = append(parts, b.String())
			}
		}
	}

	parts = append(parts, "Wishing you the very best in your career journey!")
	return strings.Join(parts, "\n")
}
