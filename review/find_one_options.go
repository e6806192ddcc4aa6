package review

type FindOneOptions struct {
	IdOption *IdOption
}

func (options *FindOneOptions) Validate() error {
	if options.IdOption == nil {
		return ErrOneOptionRequired
	}
	return options.IdOption.Validate()
}

type IdOption struct {
	Id string
}

func (option *IdOption) Validate() error {
	if len(option.Id) == 0 {
		return ErrIdRequired
	}
	return nil
}
