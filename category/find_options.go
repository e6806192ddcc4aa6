package category

type FindOptions struct {
	Ids   []string
	Query string
}

type FindOneOptions struct {
	IdOption   *IdOption
	NameOption *NameOption
}

func (options *FindOneOptions) Validate() error {
	if options.IdOption != nil {
		return options.IdOption.Validate()
	}
	if options.NameOption != nil {
		return options.NameOption.Validate()
	}
	return ErrIdRequired
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

type NameOption struct {
	Name string
}

func (option *NameOption) Validate() error {
	if len(option.Name) == 0 {
		return ErrNameRequired
	}
	return nil
}

type FindAssignmentOptions struct {
	BusinessIds []string
	CategoryIds []string
}
