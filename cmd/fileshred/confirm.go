package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"fileshred/internal/config"
)

// confirmRun печатает параметры запуска и список целей и ждёт
// подтверждения. Любой ответ кроме y/yes (без учёта регистра)
// прерывает запуск.
func confirmRun(opts config.Options, files []string) bool {
	fmt.Printf("Parameters:: Overwrites: %d, Recursive: %t, Keep_files: %t, Follow_symlinks: %t, Secure_mode %t, Dry_run: %t, Verify: %t\n",
		opts.Passes, opts.Recursive, opts.Keep, opts.FollowSymlinks, opts.Secure, opts.DryRun, opts.Verify)
	fmt.Println("Files: ")
	for _, f := range files {
		fmt.Println(f)
	}
	fmt.Println()

	fmt.Println("Continue? (y/N)")
	reader := bufio.NewReader(os.Stdin)
	reply, err := reader.ReadString('\n')
	if err != nil && reply == "" {
		return false
	}

	reply = strings.ToLower(strings.TrimSpace(reply))
	return reply == "y" || reply == "yes"
}
