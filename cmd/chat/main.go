package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"course-advisor-be/internal/bootstrap"
	"course-advisor-be/internal/config"
	"course-advisor-be/internal/constant"
	"course-advisor-be/internal/dto"
)

// Local REPL over the same advice engine the REST server exposes. Handy for
// trying out lexicon or weighting changes without a running frontend.
func main() {
	cfg := config.Load()
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	bot := color.New(color.FgCyan, color.Bold)
	you := color.New(color.FgGreen)

	bot.Println("Course Advisor: type your interests, 'bye' to finish.")

	sessionID := uuid.NewString()
	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		you.Print("you> ")
		if !scanner.Scan() {
			break
		}

		res, err := container.ChatService.Chat(ctx, sessionID, &dto.ChatRequest{Message: scanner.Text()})
		if err != nil {
			fmt.Fprintf(os.Stderr, "chat failed: %v\n", err)
			os.Exit(1)
		}

		bot.Println(res.Response)
		if res.Status == constant.ChatStatusSessionEnded {
			break
		}
	}
}
