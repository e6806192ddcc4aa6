package model

type IdKind string

const (
	IdKindBusiness IdKind = "Business"
	IdKindReview   IdKind = "Review"
	IdKindUser     IdKind = "User"
	IdKindCategory IdKind = "Category"
)

func (ik IdKind) String() string {
	return string(ik)
}
