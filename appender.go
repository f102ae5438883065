package bootstrap

// resourceAppender is the component instantiation listener registered when
// settings enable automatic resource appending. The settings are bound at
// registration time so components created before the registry commit still
// resolve them.
type resourceAppender struct {
	settings *Settings
}

func (a *resourceAppender) componentCreated(c Component) {
	if c == nil {
		return
	}
	response := c.HeaderResponse()
	if response == nil {
		return
	}
	// Settings and response are known non-nil here, RenderHead cannot fail.
	_ = RenderHead(a.settings, response)
}
