package main

import (
	"fmt"
	"net/url"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
)

func PanicIfError(config *Config, err error) {
	if err != nil {
		printUnexpectedError(config, err)
		os.Exit(1)
	}
}

func PrintErrorAndExit(config *Config, message string) {
	LogError(config, message+"\n")
	os.Exit(1)
}

func HandleUnexpectedError(config *Config, err error) {
	printUnexpectedError(config, err)
	os.Exit(1)
}

func printUnexpectedError(config *Config, err error) {
	errorMessage := err.Error()
	stackTrace := string(debug.Stack())

	title := "Unexpected error: " + strings.Split(errorMessage, "\n")[0]
	body := "* Version: " + VERSION +
		"\n* OS: " + runtime.GOOS + "-" + runtime.GOARCH +
		"\n\n```\n" + errorMessage + "\n\n" + stackTrace + "\n```"

	fmt.Println("Unexpected error:", errorMessage)
	fmt.Println(stackTrace)
	fmt.Println("________________________________________________________________________________")
	fmt.Println("\nPlease submit a new issue by simply visiting the following link:")
	fmt.Println(
		"https://github.com/ProServHQ/hd-leads-sync/issues/new?title=" +
			url.QueryEscape(title) +
			"&body=" +
			url.QueryEscape(body),
	)
}
