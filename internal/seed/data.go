package seed

import "time"

type TopicRow struct {
	Name        string
	Description string
}

type UserRow struct {
	Username  string
	Name      string
	AvatarURL string
}

// ArticleRow references its topic by display name; the stored key is its slug.
type ArticleRow struct {
	Title     string
	Topic     string
	Author    string
	Body      string
	CreatedAt time.Time
	Votes     int
}

// CommentRow references its article by 1-based insertion position.
type CommentRow struct {
	Body      string
	BelongsTo int
	Author    string
	Votes     int
	CreatedAt time.Time
}

// Dataset is everything Load writes, in insertion order.
type Dataset struct {
	Topics   []TopicRow
	Users    []UserRow
	Articles []ArticleRow
	Comments []CommentRow
}

func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 21, 54, 0, time.UTC)
}

// Development is the reference dataset. Article 1 is the newest and has
// thirteen comments, article 2 has none, and lurker has written nothing.
func Development() Dataset {
	data := Dataset{
		Topics: []TopicRow{
			{Name: "Mitch", Description: "The man, the Mitch, the legend"},
			{Name: "Cats", Description: "Not dogs"},
			{Name: "Paper", Description: "what books are made of"},
		},
		Users: []UserRow{
			{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
			{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
			{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
		},
		Articles: []ArticleRow{
			{Title: "Living in the shadow of a great man", Topic: "Mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: at(2018, time.November, 15), Votes: 100},
			{Title: "Sony Vaio; or, The Laptop", Topic: "Mitch", Author: "icellusedkars", Body: "Call me Mitchell. Some years ago, never mind how long precisely, having little or no money in my purse.", CreatedAt: at(2014, time.November, 16)},
			{Title: "Eight pug gifs that remind me of mitch", Topic: "Mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: at(2010, time.November, 17)},
			{Title: "Student SUES Mitch!", Topic: "Mitch", Author: "rogersop", Body: "We all love Mitch and his wonderful, unique typing style.", CreatedAt: at(2006, time.November, 18)},
			{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "Cats", Author: "rogersop", Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: at(2002, time.November, 19)},
			{Title: "A", Topic: "Mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: at(1998, time.November, 20)},
			{Title: "Z", Topic: "Mitch", Author: "icellusedkars", Body: "I was hungry.", CreatedAt: at(1994, time.November, 21)},
			{Title: "Does Mitch predate civilisation?", Topic: "Mitch", Author: "icellusedkars", Body: "Archaeologists have uncovered a gigantic statue from the dawn of humanity.", CreatedAt: at(1990, time.November, 22)},
			{Title: "They're not exactly dogs, are they?", Topic: "Mitch", Author: "butter_bridge", Body: "Well? Think about it.", CreatedAt: at(1986, time.November, 23)},
			{Title: "Seven inspirational thought leaders from Manchester UK", Topic: "Mitch", Author: "rogersop", Body: "Who are we kidding, there is only one, and it's Mitch!", CreatedAt: at(1982, time.November, 24)},
			{Title: "Am I a cat?", Topic: "Mitch", Author: "icellusedkars", Body: "Having run out of ideas for articles, I am staring at the wall.", CreatedAt: at(1978, time.November, 25)},
			{Title: "Moustache", Topic: "Mitch", Author: "butter_bridge", Body: "Have you seen the size of that thing?", CreatedAt: at(1974, time.November, 26)},
		},
	}

	bodies := []string{
		"Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!",
		"The beautiful thing about treasure is that it exists. Got to find out what kind of sheets these are.",
		"Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones.",
		"I hate streaming noses",
		"I hate streaming eyes even more",
		"Lobster pot",
		"Delicious crackerbreads",
		"Superficially charming",
		"git push origin master",
		"Ambidextrous marsupial",
		"Fruit pastilles",
		"Massive intercranial brain haemorrhage",
		"This morning, I showered for nine minutes.",
	}
	authors := []string{"butter_bridge", "icellusedkars", "rogersop"}
	for i, body := range bodies {
		data.Comments = append(data.Comments, CommentRow{
			Body:      body,
			BelongsTo: 1,
			Author:    authors[i%len(authors)],
			Votes:     i % 5,
			CreatedAt: at(2017, time.November, 1).AddDate(0, 0, -i),
		})
	}
	data.Comments = append(data.Comments,
		CommentRow{Body: "What do you see? I have no idea where this will lead us.", BelongsTo: 5, Author: "icellusedkars", Votes: 16, CreatedAt: at(2016, time.November, 22)},
		CommentRow{Body: "Ambidextrous marsupial", BelongsTo: 5, Author: "icellusedkars", CreatedAt: at(2015, time.November, 23)},
		CommentRow{Body: "The owls are not what they seem.", BelongsTo: 9, Author: "butter_bridge", Votes: 20, CreatedAt: at(2017, time.November, 22)},
	)
	return data
}
