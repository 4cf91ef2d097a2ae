package matching

import "strings"

type Resource struct {
	Type  string
	Title string
	Link  string
}

// resourceCatalog maps lower-cased skills to curated learning resources.
var resourceCatalog = map[string][]Resource{
	"python": {
		{Type: "📚 Course", Title: "Python for Everybody", Link: "https://www.coursera.org/learn/python"},
		{Type: "🎥 YouTube", Title: "Python Tutorial for Beginners", Link: "https://www.youtube.com/watch?v=_uQrJ0TkSuc"},
		{Type: "📖 Book", Title: "Python Crash Course", Link: "https://nostarch.com/python-crash-course-2nd-edition"},
		{Type: "💻 Practice", Title: "LeetCode Python Track", Link: "https://leetcode.com"},
		{Type: "📚 Docs", Title: "Official Python Docs", Link: "https://docs.python.org/3/"},
	},
	"javascript": {
		{Type: "📚 Course", Title: "The Complete JavaScript Course", Link: "https://www.udemy.com/course/the-complete-javascript-course-2024/"},
		{Type: "🎥 YouTube", Title: "JavaScript Fundamentals", Link: "https://www.youtube.com/watch?v=W6NZfCO5tTE"},
		{Type: "💻 Interactive", Title: "JavaScript.info", Link: "https://javascript.info"},
		{Type: "💻 Practice", Title: "Codewars JavaScript", Link: "https://www.codewars.com"},
		{Type: "📖 Book", Title: "Eloquent JavaScript", Link: "https://eloquentjavascript.net"},
	},
	"react": {
		{Type: "📚 Docs", Title: "React Official Documentation", Link: "https://react.dev"},
		{Type: "📚 Course", Title: "React - The Complete Guide", Link: "https://www.udemy.com/course/react-the-complete-guide/"},
		{Type: "🎥 YouTube", Title: "React Course by Scrimba", Link: "https://www.youtube.com/watch?v=I6nnRc-XP2M"},
		{Type: "💻 Practice", Title: "React Router Tutorial", Link: "https://reactrouter.com"},
		{Type: "🛠️ Tools", Title: "Create React App", Link: "https://create-react-app.dev"},
	},
	"tensorflow": {
		{Type: "📚 Course", Title: "TensorFlow for Beginners", Link: "https://www.tensorflow.org/learn"},
		{Type: "🎥 YouTube", Title: "TensorFlow Tutorial", Link: "https://www.youtube.com/watch?v=KakSz1FkQmQ"},
		{Type: "📖 Book", Title: "Hands-On ML with TensorFlow", Link: "https://www.oreilly.com/library/view/hands-on-machine-learning/9781492032632/"},
		{Type: "📚 Docs", Title: "TensorFlow Official Docs", Link: "https://www.tensorflow.org/api_docs"},
		{Type: "💻 Practice", Title: "TensorFlow Examples", Link: "https://github.com/aymericdamien/TensorFlow-Examples"},
	},
	"pytorch": {
		{Type: "📚 Course", Title: "PyTorch for Deep Learning", Link: "https://pytorch.org/tutorials/"},
		{Type: "🎥 YouTube", Title: "PyTorch Full Tutorial", Link: "https://www.youtube.com/watch?v=GIsg-ZUy0MY"},
		{Type: "📚 Docs", Title: "PyTorch Documentation", Link: "https://pytorch.org/docs/stable/index.html"},
		{Type: "💻 Practice", Title: "Kaggle PyTorch Projects", Link: "https://www.kaggle.com/code?language=pytorch"},
		{Type: "📖 Book", Title: "Deep Learning with PyTorch", Link: "https://www.manning.com/books/deep-learning-with-pytorch"},
	},
	"docker": {
		{Type: "📚 Docs", Title: "Docker Official Documentation", Link: "https://docs.docker.com"},
		{Type: "📚 Course", Title: "Docker Mastery", Link: "https://www.udemy.com/course/docker-mastery/"},
		{Type: "🎥 YouTube", Title: "Docker Tutorials", Link: "https://www.youtube.com/watch?v=3c-iBn73dRM"},
		{Type: "💻 Practice", Title: "Docker Labs", Link: "https://www.docker.com/"},
		{Type: "🛠️ Tools", Title: "Docker Hub", Link: "https://hub.docker.com"},
	},
	"kubernetes": {
		{Type: "📚 Docs", Title: "Kubernetes Official Docs", Link: "https://kubernetes.io/docs/"},
		{Type: "📚 Course", Title: "Kubernetes for Beginners", Link: "https://www.udemy.com/course/kubernetes-for-beginners/"},
		{Type: "🎥 YouTube", Title: "Kubernetes Crash Course", Link: "https://www.youtube.com/watch?v=X48VuDVv0Z0"},
		{Type: "💻 Practice", Title: "Katacoda K8s Labs", Link: "https://www.katacoda.com"},
		{Type: "📖 Book", Title: "Kubernetes in Action", Link: "https://www.manning.com/books/kubernetes-in-action"},
	},
	"aws": {
		{Type: "📚 Docs", Title: "AWS Learning Path", Link: "https://aws.amazon.com/training/"},
		{Type: "📚 Course", Title: "Ultimate AWS Course", Link: "https://www.udemy.com/course/ultimate-aws-certified-solutions-architect-associate/"},
		{Type: "🎥 YouTube", Title: "AWS Tutorials", Link: "https://www.youtube.com/results?search_query=aws+tutorials"},
		{Type: "💻 Practice", Title: "AWS Free Tier", Link: "https://aws.amazon.com/free/"},
		{Type: "📖 Book", Title: "AWS Solutions Architecture", Link: "https://www.oreilly.com/"},
	},
	"sql": {
		{Type: "📚 Course", Title: "SQL for Data Analysis", Link: "https://www.udemy.com/course/sql-for-business-analysts/"},
		{Type: "🎥 YouTube", Title: "SQL Tutorial", Link: "https://www.youtube.com/watch?v=19vJtICSIOU"},
		{Type: "💻 Practice", Title: "SQLZoo", Link: "https://www.sqlzoo.net"},
		{Type: "📚 Docs", Title: "PostgreSQL Documentation", Link: "https://www.postgresql.org/docs/"},
		{Type: "💻 Interactive", Title: "Mode SQL Tutorial", Link: "https://mode.com/sql-tutorial/"},
	},
	"fastapi": {
		{Type: "📚 Docs", Title: "FastAPI Official Documentation", Link: "https://fastapi.tiangolo.com"},
		{Type: "🎥 YouTube", Title: "FastAPI Tutorial", Link: "https://www.youtube.com/watch?v=7t2alSnE2-I"},
		{Type: "📚 Course", Title: "FastAPI on Udemy", Link: "https://www.udemy.com/course/fastapi-the-complete-course/"},
		{Type: "💻 Practice", Title: "Real Python FastAPI", Link: "https://realpython.com/fastapi-python-web-apis/"},
		{Type: "🛠️ Tools", Title: "FastAPI GitHub", Link: "https://github.com/tiangolo/fastapi"},
	},
	"statistics": {
		{Type: "📚 Course", Title: "Statistics with Python", Link: "https://www.coursera.org/learn/basic-statistics"},
		{Type: "🎥 YouTube", Title: "Statistics Essentials", Link: "https://www.youtube.com/watch?v=xxpc-SQ5BII"},
		{Type: "📖 Book", Title: "Statistical Rethinking", Link: "https://xcelab.net/rm/statistical-rethinking/"},
		{Type: "💻 Practice", Title: "Khan Academy Statistics", Link: "https://www.khanacademy.org/math/statistics-probability"},
		{Type: "💻 Tool", Title: "R Statistical Computing", Link: "https://www.r-project.org"},
	},
}

// RecommendResources returns curated resources for a skill, or a generated
// fallback set that embeds the skill string as given (original casing).
func RecommendResources(skill string) []Resource {
	if curated, ok := resourceCatalog[strings.ToLower(skill)]; ok {
		return append([]Resource(nil), curated...)
	}

	query := strings.ReplaceAll(skill, " ", "+")
	return []Resource{
		{Type: "🔍 Search", Title: "Google: Learn " + skill, Link: "https://www.google.com/search?q=learn+" + query},
		{Type: "📚 Course", Title: skill + " on Udemy", Link: "https://www.udemy.com"},
		{Type: "🎥 YouTube", Title: skill + " Tutorial", Link: "https://www.youtube.com"},
		{Type: "📖 Books", Title: "O'Reilly " + skill + " Books", Link: "https://www.oreilly.com"},
		{Type: "💻 Community", Title: "Stack Overflow " + skill + " Tag", Link: "https://stackoverflow.com"},
	}
}
