package cmd

var StepCmd = cmd(&Command{
	Name: "s",
	Desc: "Execute one instruction.",
	Run: func(c *Context) error {
		if err := c.S.Step(); err != nil {
			return &ExecError{err}
		}
		c.printChanges()
		return nil
	},
})

var ContinueCmd = cmd(&Command{
	Name: "c",
	Desc: "Run until IP leaves memory.",
	Run: func(c *Context) error {
		for !c.S.Done() {
			if err := c.S.Step(); err != nil {
				return &ExecError{err}
			}
		}
		return nil
	},
})
