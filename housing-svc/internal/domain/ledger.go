package domain

func (r *Review) HasUpvoted(userID int64) bool {
	for _, id := range r.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// Upvote records one vote per user. upvoteCount always equals len(likedBy).
func (r *Review) Upvote(userID int64) error {
	if r.HasUpvoted(userID) {
		return ErrAlreadyUpvoted
	}
	r.LikedBy = append(r.LikedBy, userID)
	r.UpvoteCount++
	return nil
}

func (r *Review) UndoUpvote(userID int64) error {
	for i, id := range r.LikedBy {
		if id == userID {
			r.LikedBy = append(r.LikedBy[:i:i], r.LikedBy[i+1:]...)
			r.UpvoteCount--
			return nil
		}
	}
	return ErrNotUpvoted
}
