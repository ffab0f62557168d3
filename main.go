package main

import "school-onboarding/cmd"

func main() {
	cmd.Execute()
}
