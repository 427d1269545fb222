// Package career holds the pure business logic behind the AI-career
// tools: mock-interview generation and scoring, and the resume builder.
package career

import "github.com/rahul0401-coder/intraview-AI-career/internal/models"

// skillBlock is one entry of the generation table: when any of the
// normalized keywords appears in a user's skills, the whole question
// block is appended to the quiz. Blocks are additive: a profile with
// several recognized skills accumulates several blocks.
type skillBlock struct {
	Keywords  []string
	Questions []models.QuizQuestion
}

// defaultQuestions covers general fundamentals and is always included.
var defaultQuestions = []models.QuizQuestion{
	{
		Question: "What is a closure in JavaScript?",
		Options: []string{
			"A function that has access to variables in its outer scope",
			"A method to close browser windows",
			"A way to protect code from external access",
			"A design pattern for asynchronous code",
		},
		CorrectAnswer: "A function that has access to variables in its outer scope",
		Explanation:   "A closure is a function that has access to variables in its parent scope, even after the parent function has closed.",
	},
	{
		Question: "What is the difference between let and var in JavaScript?",
		Options: []string{
			"var is block-scoped, let is function-scoped",
			"let is block-scoped, var is function-scoped",
			"They are identical in modern JavaScript",
			"var cannot be reassigned, let can be",
		},
		CorrectAnswer: "let is block-scoped, var is function-scoped",
		Explanation:   "Variables declared with let are block-scoped, meaning they're only accessible within the block they're defined in. Variables declared with var are function-scoped.",
	},
}

var skillBlocks = []skillBlock{
	{
		Keywords: []string{"react"},
		Questions: []models.QuizQuestion{
			{
				Question: "What is the purpose of React's useEffect hook?",
				Options: []string{
					"To fetch data from APIs only",
					"To perform side effects in function components",
					"To create new state variables",
					"To replace class components entirely",
				},
				CorrectAnswer: "To perform side effects in function components",
				Explanation:   "useEffect is used to perform side effects in function components. Side effects can include data fetching, DOM manipulation, setting up subscriptions, and more.",
			},
			{
				Question: "In React, what is the purpose of keys when rendering lists?",
				Options: []string{
					"Keys are optional and only improve performance",
					"Keys help React identify which items have changed, been added, or removed",
					"Keys are required for all elements, not just lists",
					"Keys replace the need for state management",
				},
				CorrectAnswer: "Keys help React identify which items have changed, been added, or removed",
				Explanation:   "Keys give elements a stable identity and help React identify which items have changed, been added, or removed. They should be unique among siblings in a list.",
			},
			{
				Question: "What is the difference between state and props in React?",
				Options: []string{
					"State is immutable, props are mutable",
					"Props are for functional components, state is for class components",
					"State is managed within the component, props are passed from parent components",
					"Props are private, state is public",
				},
				CorrectAnswer: "State is managed within the component, props are passed from parent components",
				Explanation:   "State is managed within a component and can be updated with setState (or state updater functions in hooks). Props are passed down from parent components and are read-only within the component that receives them.",
			},
			{
				Question: "What is React's Virtual DOM?",
				Options: []string{
					"A browser feature that React uses for faster rendering",
					"A lightweight copy of the real DOM that React uses for performance optimization",
					"A database that stores component state",
					"A component that virtualizes list rendering",
				},
				CorrectAnswer: "A lightweight copy of the real DOM that React uses for performance optimization",
				Explanation:   "The Virtual DOM is a lightweight JavaScript representation of the real DOM. React uses it to compare changes before updating the actual DOM, which improves performance by minimizing expensive DOM operations.",
			},
			{
				Question: "What is the purpose of React Context?",
				Options: []string{
					"To store global CSS variables",
					"To bypass the single-direction data flow and avoid prop drilling",
					"To connect React to backend services",
					"To store component-level state",
				},
				CorrectAnswer: "To bypass the single-direction data flow and avoid prop drilling",
				Explanation:   "React Context provides a way to share values between components without explicitly passing props through every level of the component tree, avoiding the problem known as 'prop drilling'.",
			},
		},
	},
	{
		Keywords: []string{"python"},
		Questions: []models.QuizQuestion{
			{
				Question: "What is a Python generator?",
				Options: []string{
					"A type of function that returns multiple values using the yield keyword",
					"A class that generates random numbers",
					"A tool that automatically generates Python code",
					"A module for creating Python packages",
				},
				CorrectAnswer: "A type of function that returns multiple values using the yield keyword",
				Explanation:   "A generator is a special type of function that returns an iterator. It uses the yield keyword instead of return and can pause and resume its execution state.",
			},
			{
				Question: "What does the __init__ method do in Python?",
				Options: []string{
					"Initializes a module when imported",
					"Initializes a class instance and sets initial attributes",
					"Initializes the Python interpreter",
					"Creates a constructor function",
				},
				CorrectAnswer: "Initializes a class instance and sets initial attributes",
				Explanation:   "The __init__ method is a special method (constructor) in Python classes that is automatically called when a new instance of a class is created. It's used to initialize the object's attributes.",
			},
			{
				Question: "What is the difference between a list and a tuple in Python?",
				Options: []string{
					"Lists are ordered, tuples are not",
					"Tuples are immutable, lists are mutable",
					"Lists can only contain numbers, tuples can contain any data type",
					"Tuples are faster than lists for all operations",
				},
				CorrectAnswer: "Tuples are immutable, lists are mutable",
				Explanation:   "The main difference is that lists are mutable (can be changed after creation) while tuples are immutable (cannot be modified after creation). Both are ordered collections that can hold mixed data types.",
			},
			{
				Question: "What are Python decorators?",
				Options: []string{
					"Functions that add layout elements to a GUI",
					"Design patterns for object-oriented programming",
					"Functions that take another function as an argument and extend its behavior",
					"Special comments that document code automatically",
				},
				CorrectAnswer: "Functions that take another function as an argument and extend its behavior",
				Explanation:   "Decorators are a powerful and expressive feature in Python that allow you to modify or extend the behavior of functions or methods without changing their source code. They are implemented as functions that take another function as an argument and return a new function.",
			},
			{
				Question: "What is a context manager in Python?",
				Options: []string{
					"A tool for managing memory allocation",
					"A feature that allows specific execution contexts for functions",
					"A protocol for resource management using with statements",
					"A type of global variable scope",
				},
				CorrectAnswer: "A protocol for resource management using with statements",
				Explanation:   "Context managers in Python implement the context management protocol (__enter__ and __exit__ methods) and are used with the 'with' statement to handle resource allocation and cleanup. Common examples include file handling where files are automatically closed when the with block exits.",
			},
		},
	},
	{
		Keywords: []string{"sql", "database"},
		Questions: []models.QuizQuestion{
			{
				Question: "What is the difference between INNER JOIN and LEFT JOIN in SQL?",
				Options: []string{
					"There is no difference; they are synonyms",
					"INNER JOIN returns matching rows, LEFT JOIN returns all rows from the left table plus matching rows from the right table",
					"INNER JOIN is faster than LEFT JOIN",
					"LEFT JOIN can only be used with primary keys",
				},
				CorrectAnswer: "INNER JOIN returns matching rows, LEFT JOIN returns all rows from the left table plus matching rows from the right table",
				Explanation:   "INNER JOIN returns only rows that have matching values in both tables. LEFT JOIN returns all rows from the left table and matching rows from the right table. If there's no match, NULL values are returned for the right table columns.",
			},
			{
				Question: "What is database normalization?",
				Options: []string{
					"The process of optimizing database queries",
					"Converting a database to a different SQL dialect",
					"Organizing data to reduce redundancy and improve data integrity",
					"Compressing database tables to save storage space",
				},
				CorrectAnswer: "Organizing data to reduce redundancy and improve data integrity",
				Explanation:   "Normalization is the process of organizing data in a database by creating tables and establishing relationships between them according to rules designed to protect data and make the database more flexible by eliminating redundancy and inconsistent dependency.",
			},
			{
				Question: "What is the purpose of an index in a database?",
				Options: []string{
					"To create foreign key relationships",
					"To speed up data retrieval operations on a table",
					"To enforce data integrity constraints",
					"To track changes to the database over time",
				},
				CorrectAnswer: "To speed up data retrieval operations on a table",
				Explanation:   "An index is a data structure that improves the speed of data retrieval operations on a database table. Indexes can be created using one or more columns, providing a faster path to the data. However, they come with the overhead of additional writes and storage space.",
			},
			{
				Question: "What is the difference between SQL's HAVING and WHERE clauses?",
				Options: []string{
					"HAVING can only be used with string columns, WHERE with numeric columns",
					"WHERE filters individual rows before grouping, HAVING filters groups after GROUP BY",
					"HAVING is used for simple conditions, WHERE for complex ones",
					"There is no difference; they are interchangeable",
				},
				CorrectAnswer: "WHERE filters individual rows before grouping, HAVING filters groups after GROUP BY",
				Explanation:   "WHERE is used to filter individual rows before they are grouped in a GROUP BY clause. HAVING is used to filter groups after the GROUP BY has been applied. HAVING can use aggregate functions (like COUNT, SUM) while WHERE cannot.",
			},
			{
				Question: "What is a transaction in a database?",
				Options: []string{
					"A record of user access to the database",
					"A unit of work that is performed against a database and treated as a single logical operation",
					"A connection between two database tables",
					"A query that retrieves data from multiple tables",
				},
				CorrectAnswer: "A unit of work that is performed against a database and treated as a single logical operation",
				Explanation:   "A transaction is a sequence of operations performed as a single logical unit of work. A transaction has the ACID properties: Atomicity (all or nothing), Consistency (valid states only), Isolation (transactions don't interfere), and Durability (changes persist).",
			},
		},
	},
	{
		Keywords: []string{"java"},
		Questions: []models.QuizQuestion{
			{
				Question: "What is the difference between an interface and an abstract class in Java?",
				Options: []string{
					"Interfaces can have method implementations, abstract classes cannot",
					"Abstract classes can have method implementations and state, interfaces traditionally only define method signatures",
					"Interfaces cannot be instantiated, abstract classes can",
					"Abstract classes support multiple inheritance, interfaces don't",
				},
				CorrectAnswer: "Abstract classes can have method implementations and state, interfaces traditionally only define method signatures",
				Explanation:   "Abstract classes can have both abstract methods and concrete methods with implementations, and they can maintain state (instance variables). Interfaces traditionally only define method signatures, although in newer Java versions they can have default and static methods.",
			},
			{
				Question: "What is the purpose of the 'final' keyword in Java?",
				Options: []string{
					"It's used only for optimization hints to the compiler",
					"It marks a variable that will be initialized at runtime",
					"It indicates that a variable, method, or class cannot be changed/overridden",
					"It forces garbage collection on an object when it goes out of scope",
				},
				CorrectAnswer: "It indicates that a variable, method, or class cannot be changed/overridden",
				Explanation:   "The 'final' keyword in Java has different meanings depending on context: final variables can't be reassigned, final methods can't be overridden, and final classes can't be extended.",
			},
			{
				Question: "What is the difference between '==' and '.equals()' in Java?",
				Options: []string{
					"They are identical and can be used interchangeably",
					"'==' compares memory references, '.equals()' typically compares contents",
					"'==' is for primitive types, '.equals()' doesn't work with primitive types",
					"'.equals()' is faster than '=='",
				},
				CorrectAnswer: "'==' compares memory references, '.equals()' typically compares contents",
				Explanation:   "The '==' operator compares if two references point to the same object in memory. The '.equals()' method, when properly overridden, compares the actual contents or values of the objects. For strings and many objects, '.equals()' checks if the values are the same, not if they're the same object.",
			},
			{
				Question: "What is the Java Collections Framework?",
				Options: []string{
					"A library for collecting and organizing program dependencies",
					"A set of classes and interfaces that implement commonly reusable data structures",
					"A framework for connecting to various databases",
					"A utility for gathering garbage collection statistics",
				},
				CorrectAnswer: "A set of classes and interfaces that implement commonly reusable data structures",
				Explanation:   "The Java Collections Framework provides a unified architecture for representing and manipulating collections of objects. It includes interfaces like List, Set, and Map, and implementations like ArrayList, HashSet, and HashMap, along with algorithms for searching, sorting, etc.",
			},
			{
				Question: "What is the purpose of Java's Exception Handling mechanism?",
				Options: []string{
					"To prevent runtime errors from occurring",
					"To catch and handle unexpected conditions during program execution",
					"To make code faster by avoiding error checking",
					"To report errors to the Java Virtual Machine",
				},
				CorrectAnswer: "To catch and handle unexpected conditions during program execution",
				Explanation:   "Java's exception handling mechanism provides a way to deal with runtime errors or exceptional situations in a controlled fashion. It allows separating normal code from error-handling code, making programs more robust and readable. The try-catch-finally blocks and throw/throws keywords are central to this mechanism.",
			},
		},
	},
	{
		Keywords: []string{"devops", "aws", "cloud"},
		Questions: []models.QuizQuestion{
			{
				Question: "What is containerization in DevOps?",
				Options: []string{
					"Running applications in a virtual machine",
					"Packaging code and dependencies together for consistent deployment",
					"Storing data in secure containers",
					"A security measure to isolate sensitive data",
				},
				CorrectAnswer: "Packaging code and dependencies together for consistent deployment",
				Explanation:   "Containerization is the process of packaging an application along with its dependencies, configuration files, and environment variables in a container. This ensures that the application runs consistently regardless of the infrastructure, making deployment more reliable and efficient.",
			},
			{
				Question: "What is the difference between Docker and Kubernetes?",
				Options: []string{
					"They are competitors offering the same functionality",
					"Docker is a containerization platform, Kubernetes is a container orchestration system",
					"Docker is for Windows containers, Kubernetes is for Linux containers",
					"Docker is open-source, Kubernetes is proprietary",
				},
				CorrectAnswer: "Docker is a containerization platform, Kubernetes is a container orchestration system",
				Explanation:   "Docker is a platform that allows you to create, run, and manage containers. Kubernetes is an orchestration system for automating deployment, scaling, and management of containerized applications. They often work together: Docker for creating containers, Kubernetes for orchestrating them at scale.",
			},
			{
				Question: "What is Continuous Integration/Continuous Deployment (CI/CD)?",
				Options: []string{
					"A software development approach where code is continuously written without breaks",
					"A practice of merging code changes frequently and automating the delivery process",
					"A type of Agile methodology focused on continuous client feedback",
					"A programming paradigm that emphasizes continuously changing requirements",
				},
				CorrectAnswer: "A practice of merging code changes frequently and automating the delivery process",
				Explanation:   "CI/CD is a set of practices where developers frequently merge their code changes into a central repository where automated builds and tests run. Continuous Deployment extends this by automatically deploying all code changes to testing or production environments after the build stage.",
			},
			{
				Question: "What is Infrastructure as Code (IaC)?",
				Options: []string{
					"Writing code that directly modifies physical hardware",
					"Managing and provisioning infrastructure through code instead of manual processes",
					"A programming language specifically designed for infrastructure management",
					"Coding practices for infrastructure teams",
				},
				CorrectAnswer: "Managing and provisioning infrastructure through code instead of manual processes",
				Explanation:   "Infrastructure as Code (IaC) is the practice of managing and provisioning computing infrastructure through machine-readable definition files, rather than physical hardware configuration or point-and-click configuration tools. Tools like Terraform, AWS CloudFormation, and Ansible are examples of IaC technologies.",
			},
			{
				Question: "What is the principle of 'immutable infrastructure' in DevOps?",
				Options: []string{
					"Infrastructure that cannot be physically accessed for security reasons",
					"Systems that never require updates or patches",
					"Infrastructure components that are never modified after deployment but replaced entirely",
					"Using only proprietary software that cannot be modified",
				},
				CorrectAnswer: "Infrastructure components that are never modified after deployment but replaced entirely",
				Explanation:   "Immutable infrastructure is an approach where servers, once deployed, are never modified—instead, any change requires building a new server from a common image with the changes baked in. This leads to more consistent, reliable, and predictable systems by eliminating configuration drift and reducing deployment complexity.",
			},
		},
	},
	{
		Keywords: []string{"javascript", "js"},
		Questions: []models.QuizQuestion{
			{
				Question: "What is event bubbling in JavaScript?",
				Options: []string{
					"A technique to optimize event handling",
					"When an event triggers on an element and propagates up to parent elements",
					"A method to create multiple events simultaneously",
					"A way to prevent default browser behavior",
				},
				CorrectAnswer: "When an event triggers on an element and propagates up to parent elements",
				Explanation:   "Event bubbling is a mechanism where an event triggered on the innermost element bubbles up through its ancestors in the DOM tree until it reaches the outermost ancestor or is explicitly stopped.",
			},
			{
				Question: "What is the purpose of JavaScript Promises?",
				Options: []string{
					"To guarantee code performance",
					"To represent a future value and handle asynchronous operations",
					"To secure JavaScript code from being modified",
					"To enforce contractual agreements in code",
				},
				CorrectAnswer: "To represent a future value and handle asynchronous operations",
				Explanation:   "Promises are objects representing the eventual completion or failure of an asynchronous operation. They allow you to write cleaner code by chaining .then() and .catch() methods instead of nesting callbacks, helping avoid 'callback hell'.",
			},
			{
				Question: "What is the JavaScript 'this' keyword?",
				Options: []string{
					"A keyword that always refers to the global object",
					"A reference to the previous function in the call stack",
					"A reference to the object that is executing the current function",
					"A keyword used only in class definitions",
				},
				CorrectAnswer: "A reference to the object that is executing the current function",
				Explanation:   "The 'this' keyword refers to the object that the function is a property of. The value of 'this' depends on how the function is called: in a method, 'this' refers to the object; in a simple function call, it refers to the global object (or undefined in strict mode); in an event, it refers to the element that received the event.",
			},
			{
				Question: "What is the difference between '==' and '===' operators in JavaScript?",
				Options: []string{
					"They are identical in modern JavaScript",
					"'===' checks both value and type, '==' checks only value",
					"'==' is for strings, '===' is for numbers",
					"'===' is deprecated in ES6+",
				},
				CorrectAnswer: "'===' checks both value and type, '==' checks only value",
				Explanation:   "The '===' (strict equality) operator checks if both the value and type are the same, without type conversion. The '==' (loose equality) operator performs type coercion before comparison, meaning it converts the operands to the same type when comparing.",
			},
			{
				Question: "What is a JavaScript closure?",
				Options: []string{
					"A way to close browser windows using JavaScript",
					"A function that has access to variables from its outer lexical scope even after that scope has closed",
					"A method to terminate running JavaScript code",
					"A technique for hiding HTML elements",
				},
				CorrectAnswer: "A function that has access to variables from its outer lexical scope even after that scope has closed",
				Explanation:   "A closure is the combination of a function and the lexical environment within which that function was declared. This allows the function to access variables from its parent scope even after the parent function has returned, effectively 'remembering' the environment in which it was created.",
			},
		},
	},
}

// categoryExtras are appended when the request names a known category,
// on top of anything the skills already contributed.
var categoryExtras = map[string][]models.QuizQuestion{
	"javascript": {
		{
			Question: "What is event bubbling in JavaScript?",
			Options: []string{
				"A technique to optimize event handling",
				"When an event triggers on an element and propagates up to parent elements",
				"A method to create multiple events simultaneously",
				"A way to prevent default browser behavior",
			},
			CorrectAnswer: "When an event triggers on an element and propagates up to parent elements",
			Explanation:   "Event bubbling is a mechanism where an event triggered on the innermost element bubbles up through its ancestors in the DOM tree until it reaches the outermost ancestor or is explicitly stopped.",
		},
	},
}
