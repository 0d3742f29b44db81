package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/foliolib/folio/internal/entities"
)

// The functions in this file are pure mappings from each provider's wire
// format into the canonical Book. Rules shared by all providers:
//
//   - image URLs are always rewritten to https, never rejected
//   - missing optional scalars stay at their zero value; list fields are
//     always non-nil, empty when the provider sent nothing
//   - author and category ordering is preserved as sent, no deduplication
//   - ISBN-10 and ISBN-13 are filled independently, never derived from
//     one another

// secureImageURL rewrites an http:// URL to https://.
func secureImageURL(raw string) string {
	if strings.HasPrefix(raw, "http://") {
		return "https://" + strings.TrimPrefix(raw, "http://")
	}
	return raw
}

// firstNonEmpty returns the first non-empty string, https-rewritten.
func firstNonEmpty(urls ...string) string {
	for _, u := range urls {
		if u != "" {
			return secureImageURL(u)
		}
	}
	return ""
}

func googleVolumeToBook(item googleBookItem) entities.Book {
	info := item.VolumeInfo

	var isbn10, isbn13 string
	for _, id := range info.IndustryIdentifiers {
		switch id.Type {
		case "ISBN_10":
			if isbn10 == "" {
				isbn10 = id.Identifier
			}
		case "ISBN_13":
			if isbn13 == "" {
				isbn13 = id.Identifier
			}
		}
	}

	var thumbnail, large string
	if links := info.ImageLinks; links != nil {
		// smallest variant for the thumbnail, largest for the detail image
		thumbnail = firstNonEmpty(links.SmallThumbnail, links.Thumbnail, links.Small, links.Medium, links.Large)
		large = firstNonEmpty(links.Large, links.Medium, links.Small, links.Thumbnail, links.SmallThumbnail)
	}

	return entities.Book{
		ID:            item.ID,
		Title:         info.Title,
		Authors:       copyList(info.Authors),
		ISBN10:        isbn10,
		ISBN13:        isbn13,
		Publisher:     info.Publisher,
		PublishedDate: info.PublishedDate,
		Description:   info.Description,
		PageCount:     info.PageCount,
		Categories:    copyList(info.Categories),
		ThumbnailURL:  thumbnail,
		LargeImageURL: large,
		Language:      info.Language,
		Rating:        info.AverageRating,
		ReadingStatus: entities.StatusNotStarted,
		IsManualEntry: false,
		DateAdded:     time.Now(),
	}
}

func openLibraryDocToBook(doc openLibraryDoc) entities.Book {
	// Open Library's isbn list mixes both formats without type tags;
	// classify by length and keep the first of each.
	var isbn10, isbn13 string
	for _, isbn := range doc.ISBN {
		switch len(isbn) {
		case 10:
			if isbn10 == "" {
				isbn10 = isbn
			}
		case 13:
			if isbn13 == "" {
				isbn13 = isbn
			}
		}
	}

	var publisher string
	if len(doc.Publisher) > 0 {
		publisher = doc.Publisher[0]
	}

	var publishedDate string
	if len(doc.PublishDate) > 0 {
		publishedDate = doc.PublishDate[0]
	} else if doc.FirstPublishYear > 0 {
		publishedDate = strconv.Itoa(doc.FirstPublishYear)
	}

	var language string
	if len(doc.Language) > 0 {
		language = doc.Language[0]
	}

	var thumbnail, large string
	if doc.CoverID != 0 {
		thumbnail = fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-S.jpg", doc.CoverID)
		large = fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-L.jpg", doc.CoverID)
	}

	return entities.Book{
		ID:            doc.Key,
		Title:         doc.Title,
		Authors:       copyList(doc.AuthorName),
		ISBN10:        isbn10,
		ISBN13:        isbn13,
		Publisher:     publisher,
		PublishedDate: publishedDate,
		PageCount:     doc.NumberOfPagesMedian,
		Categories:    copyList(doc.Subject),
		ThumbnailURL:  thumbnail,
		LargeImageURL: large,
		Language:      language,
		ReadingStatus: entities.StatusNotStarted,
		IsManualEntry: false,
		DateAdded:     time.Now(),
	}
}

func isbndbBookToBook(book isbndbBook, lookupISBN string) entities.Book {
	id := book.ISBN13
	if id == "" {
		id = book.ISBN
	}
	if id == "" {
		id = lookupISBN
	}

	// Single image URL serves as both sizes.
	image := secureImageURL(book.Image)

	return entities.Book{
		ID:            id,
		Title:         book.Title,
		Authors:       copyList(book.Authors),
		ISBN10:        book.ISBN,
		ISBN13:        book.ISBN13,
		Publisher:     book.Publisher,
		PublishedDate: book.DatePublished,
		Description:   book.Synopsis,
		PageCount:     book.Pages,
		Categories:    copyList(book.Subjects),
		ThumbnailURL:  image,
		LargeImageURL: image,
		Language:      book.Language,
		ReadingStatus: entities.StatusNotStarted,
		IsManualEntry: false,
		DateAdded:     time.Now(),
	}
}

// copyList returns a non-nil copy preserving source order.
func copyList(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}
