package cmd

var HelpCmd = cmd(&Command{
	Name: "help",
	Desc: "List commands.",
	Run: func(c *Context) error {
		for _, command := range sortedCommands() {
			c.Printf("  %-20s %s\n", command.Usage(), command.Desc)
		}
		c.Printf("  %-20s %s\n", "<empty line>", "Repeat the last command.")
		return nil
	},
})
