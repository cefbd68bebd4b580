package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Boards() BoardRepository
	Streams() StreamRepository
	Subjects() SubjectRepository
	Notes() NoteRepository
	Orders() OrderRepository
	Contacts() ContactRepository
}
