package domain

// AuthorCount pairs an author with the number of blogs they have written.
type AuthorCount struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes pairs an author with a like count.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes sums the likes of all given blogs.
func TotalLikes(blogs []*Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for an empty
// list. Ties go to the earlier entry.
func FavoriteBlog(blogs []*Blog) *Blog {
	var favorite *Blog
	for _, b := range blogs {
		if favorite == nil || b.Likes > favorite.Likes {
			favorite = b
		}
	}
	return favorite
}

// MostBlogs returns the author with the largest number of blogs. The zero
// value is returned for an empty list. Ties go to the author seen first.
func MostBlogs(blogs []*Blog) AuthorCount {
	if len(blogs) == 0 {
		return AuthorCount{}
	}

	counts := make(map[string]int, len(blogs))
	order := make([]string, 0, len(blogs))
	for _, b := range blogs {
		if _, seen := counts[b.Author]; !seen {
			order = append(order, b.Author)
		}
		counts[b.Author]++
	}

	top := AuthorCount{Author: order[0], Blogs: counts[order[0]]}
	for _, author := range order[1:] {
		if counts[author] > top.Blogs {
			top = AuthorCount{Author: author, Blogs: counts[author]}
		}
	}
	return top
}

// MostLikes returns the author and like count of the single most liked blog,
// not a per-author sum. The zero value is returned for an empty list; ties go
// to the earlier entry, matching FavoriteBlog.
func MostLikes(blogs []*Blog) AuthorLikes {
	top := FavoriteBlog(blogs)
	if top == nil {
		return AuthorLikes{}
	}
	return AuthorLikes{Author: top.Author, Likes: top.Likes}
}
